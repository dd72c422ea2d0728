package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"buildhive-be/internal/constant"
	"buildhive-be/internal/dto"
	"buildhive-be/internal/entity"
	"buildhive-be/internal/pkg/logger"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"
	"buildhive-be/pkg/events"
	pktNats "buildhive-be/pkg/nats"
	"buildhive-be/pkg/review"

	"github.com/google/uuid"
)

type ICodeReviewService interface {
	Create(ctx context.Context, userId *uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Show(ctx context.Context, userId *uuid.UUID, id uuid.UUID) (*dto.ReviewResponse, error)
	MyReviews(ctx context.Context, userId uuid.UUID, page, limit int) ([]dto.ReviewListItem, error)
	Stats(ctx context.Context, userId uuid.UUID) (*dto.ReviewStatsResponse, error)
}

type codeReviewService struct {
	uowFactory     unitofwork.RepositoryFactory
	analyzer       *review.Analyzer
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewCodeReviewService(uowFactory unitofwork.RepositoryFactory, analyzer *review.Analyzer, eventPublisher *pktNats.Publisher, log logger.ILogger) ICodeReviewService {
	return &codeReviewService{
		uowFactory:     uowFactory,
		analyzer:       analyzer,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// startOfDay is the local midnight that opens the current usage window.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextMidnight is when the current usage window resets.
func nextMidnight(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}

func quotaError(plan string, limit int) error {
	return serverutils.NewAppErrorWith(403, "Daily review limit reached", map[string]interface{}{
		"error":           "Daily review limit reached",
		"plan":            plan,
		"limit":           limit,
		"upgradeRequired": true,
	})
}

func countTodayReviews(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (int64, error) {
	return uow.CodeReviewRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreatedSince{Since: startOfDay(time.Now())},
	)
}

func (s *codeReviewService) Create(ctx context.Context, userId *uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if len(req.Code) > constant.MaxReviewCodeLength {
		return nil, serverutils.BadRequest("Code exceeds the maximum length of 20000 characters")
	}
	if !constant.IsSupportedReviewLanguage(req.Language) {
		return nil, serverutils.BadRequest("Unsupported language")
	}
	// Stored lower-cased so the language breakdown never splits
	// "Python" and "python" into separate buckets.
	language := strings.ToLower(req.Language)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var plan string
	var limit int
	if userId != nil {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, serverutils.Unauthorized("User not found")
		}
		plan = user.Plan
		limit = constant.DailyLimitFor(plan)

		// Fast rejection before spending an AI call. The binding check
		// happens again inside the insert transaction.
		count, err := countTodayReviews(ctx, uow, *userId)
		if err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return nil, quotaError(plan, limit)
		}
	}

	result, err := s.analyzer.Review(ctx, req.Code, language)
	if err != nil {
		s.log.Error("review", "ai review call failed", map[string]interface{}{
			"language": language,
			"error":    err.Error(),
		})
		if errors.Is(err, review.ErrUnavailable) {
			return nil, serverutils.ServiceUnavailable("AI review service unavailable. Please try again later.")
		}
		return nil, err
	}

	record := &entity.CodeReview{
		Id:          uuid.New(),
		UserId:      userId,
		Code:        req.Code,
		Language:    language,
		Score:       result.Score,
		Issues:      result.Issues,
		Suggestions: result.Suggestions,
		Resources:   result.Resources,
		CreatedAt:   time.Now(),
	}

	if userId != nil {
		// Recount and insert under one transaction. READ COMMITTED
		// alone still lets two boundary requests both count limit-1,
		// so the user row is locked first to serialize same-user
		// submissions before the recount.
		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		defer uow.Rollback()

		if _, err := uow.UserRepository().FindOne(ctx,
			specification.ByID{ID: *userId},
			specification.LockForUpdate{},
		); err != nil {
			return nil, err
		}

		count, err := countTodayReviews(ctx, uow, *userId)
		if err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return nil, quotaError(plan, limit)
		}
		if err := uow.CodeReviewRepository().Create(ctx, record); err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
	} else {
		if err := uow.CodeReviewRepository().Create(ctx, record); err != nil {
			return nil, err
		}
	}

	s.publishCompleted(ctx, record)

	return toReviewResponse(record), nil
}

func (s *codeReviewService) Show(ctx context.Context, userId *uuid.UUID, id uuid.UUID) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.CodeReviewRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, serverutils.NotFound("Review not found")
	}
	// Guest reviews have no owner and stay readable by link. Owned
	// reviews are visible to their owner only.
	if record.UserId != nil {
		if userId == nil || *userId != *record.UserId {
			return nil, serverutils.Forbidden("Not authorized to view this review")
		}
	}
	return toReviewResponse(record), nil
}

func (s *codeReviewService) MyReviews(ctx context.Context, userId uuid.UUID, page, limit int) ([]dto.ReviewListItem, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.CodeReviewRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewListItem, len(records))
	for i, r := range records {
		items[i] = dto.ReviewListItem{
			Id:        r.Id,
			Language:  r.Language,
			Score:     r.Score,
			CreatedAt: r.CreatedAt,
		}
	}
	return items, nil
}

func (s *codeReviewService) Stats(ctx context.Context, userId uuid.UUID) (*dto.ReviewStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CodeReviewRepository()
	owned := specification.UserOwnedBy{UserID: userId}

	total, err := repo.Count(ctx, owned)
	if err != nil {
		return nil, err
	}
	avg, err := repo.AverageScore(ctx, owned)
	if err != nil {
		return nil, err
	}
	breakdown, err := repo.LanguageBreakdown(ctx, owned)
	if err != nil {
		return nil, err
	}

	return &dto.ReviewStatsResponse{
		TotalReviews:      total,
		AverageScore:      avg,
		LanguageBreakdown: breakdown,
	}, nil
}

func toReviewResponse(r *entity.CodeReview) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:          r.Id,
		Language:    r.Language,
		Score:       r.Score,
		Issues:      r.Issues,
		Suggestions: r.Suggestions,
		Resources:   r.Resources,
		CreatedAt:   r.CreatedAt,
	}
}

func (s *codeReviewService) publishCompleted(ctx context.Context, record *entity.CodeReview) {
	if s.eventPublisher == nil {
		return
	}
	payload := map[string]interface{}{
		"review_id": record.Id.String(),
		"language":  record.Language,
		"score":     record.Score,
	}
	if record.UserId != nil {
		payload["user_id"] = record.UserId.String()
	}
	if err := s.eventPublisher.Publish(ctx, events.New(events.ReviewCompleted, payload)); err != nil {
		s.log.Warn("review", "failed to publish review event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
