package service

import (
	"context"
	"testing"

	"buildhive-be/internal/dto"
	"buildhive-be/internal/entity"
	"buildhive-be/internal/pkg/logger"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/repository/contract"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"
	"buildhive-be/pkg/llm"
	"buildhive-be/pkg/review"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	output string
	err    error
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return p.output, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.output, p.err
}

type stubUserRepo struct {
	user *entity.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *stubUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return r.user, nil
}
func (r *stubUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) UpsertOtp(ctx context.Context, otp *entity.Otp) error { return nil }
func (r *stubUserRepo) FindOtpByEmail(ctx context.Context, email string) (*entity.Otp, error) {
	return nil, nil
}
func (r *stubUserRepo) DeleteOtp(ctx context.Context, email string) error { return nil }

type stubReviewRepo struct {
	created []*entity.CodeReview
	found   *entity.CodeReview
	count   int64
}

func (r *stubReviewRepo) Create(ctx context.Context, rec *entity.CodeReview) error {
	r.created = append(r.created, rec)
	return nil
}
func (r *stubReviewRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CodeReview, error) {
	return r.found, nil
}
func (r *stubReviewRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CodeReview, error) {
	return nil, nil
}
func (r *stubReviewRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count, nil
}
func (r *stubReviewRepo) AverageScore(ctx context.Context, specs ...specification.Specification) (float64, error) {
	return 0, nil
}
func (r *stubReviewRepo) LanguageBreakdown(ctx context.Context, specs ...specification.Specification) (map[string]int64, error) {
	return nil, nil
}

type stubUnitOfWork struct {
	users   *stubUserRepo
	reviews *stubReviewRepo
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *stubUnitOfWork) Commit() error                   { return nil }
func (u *stubUnitOfWork) Rollback() error                 { return nil }
func (u *stubUnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}
func (u *stubUnitOfWork) CodeReviewRepository() contract.CodeReviewRepository {
	return u.reviews
}
func (u *stubUnitOfWork) ProjectRepository() contract.ProjectRepository           { return nil }
func (u *stubUnitOfWork) InterestRepository() contract.InterestRepository         { return nil }
func (u *stubUnitOfWork) PaymentEventRepository() contract.PaymentEventRepository { return nil }

type stubFactory struct {
	uow *stubUnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = noopLogger{}

const stubReviewJSON = `{"score": 85, "issues": [], "suggestions": [], "resources": []}`

func newStubReviewService(uow *stubUnitOfWork, providerOutput string) ICodeReviewService {
	analyzer := review.NewAnalyzer(&stubProvider{output: providerOutput})
	return NewCodeReviewService(&stubFactory{uow: uow}, analyzer, nil, noopLogger{})
}

func TestCreateStoresLowercaseLanguage(t *testing.T) {
	userId := uuid.New()
	uow := &stubUnitOfWork{
		users:   &stubUserRepo{user: &entity.User{Id: userId, Plan: "FREE"}},
		reviews: &stubReviewRepo{},
	}
	svc := newStubReviewService(uow, stubReviewJSON)

	res, err := svc.Create(context.Background(), &userId, &dto.CreateReviewRequest{
		Code:     "print('hi')",
		Language: "Python",
	})
	assert.NoError(t, err)
	assert.Equal(t, "python", res.Language)

	if assert.Len(t, uow.reviews.created, 1) {
		assert.Equal(t, "python", uow.reviews.created[0].Language)
	}
}

func TestCreateQuotaExhausted(t *testing.T) {
	userId := uuid.New()
	uow := &stubUnitOfWork{
		users:   &stubUserRepo{user: &entity.User{Id: userId, Plan: "FREE"}},
		reviews: &stubReviewRepo{count: 5},
	}
	svc := newStubReviewService(uow, stubReviewJSON)

	_, err := svc.Create(context.Background(), &userId, &dto.CreateReviewRequest{
		Code:     "print('hi')",
		Language: "python",
	})

	var appErr *serverutils.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, fiber.StatusForbidden, appErr.Code)
		assert.Equal(t, "FREE", appErr.Extra["plan"])
		assert.Equal(t, 5, appErr.Extra["limit"])
		assert.Equal(t, true, appErr.Extra["upgradeRequired"])
	}
	assert.Empty(t, uow.reviews.created, "no record is written past the limit")
}

func TestShowVisibility(t *testing.T) {
	ownerId := uuid.New()
	otherId := uuid.New()

	t.Run("owned review blocked for another user", func(t *testing.T) {
		uow := &stubUnitOfWork{
			users:   &stubUserRepo{},
			reviews: &stubReviewRepo{found: &entity.CodeReview{Id: uuid.New(), UserId: &ownerId}},
		}
		svc := newStubReviewService(uow, stubReviewJSON)

		_, err := svc.Show(context.Background(), &otherId, uuid.New())
		var appErr *serverutils.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, fiber.StatusForbidden, appErr.Code)
		}
	})

	t.Run("owned review blocked for anonymous", func(t *testing.T) {
		uow := &stubUnitOfWork{
			users:   &stubUserRepo{},
			reviews: &stubReviewRepo{found: &entity.CodeReview{Id: uuid.New(), UserId: &ownerId}},
		}
		svc := newStubReviewService(uow, stubReviewJSON)

		_, err := svc.Show(context.Background(), nil, uuid.New())
		var appErr *serverutils.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, fiber.StatusForbidden, appErr.Code)
		}
	})

	t.Run("owner sees their review", func(t *testing.T) {
		uow := &stubUnitOfWork{
			users:   &stubUserRepo{},
			reviews: &stubReviewRepo{found: &entity.CodeReview{Id: uuid.New(), UserId: &ownerId, Language: "go"}},
		}
		svc := newStubReviewService(uow, stubReviewJSON)

		res, err := svc.Show(context.Background(), &ownerId, uuid.New())
		assert.NoError(t, err)
		assert.Equal(t, "go", res.Language)
	})

	t.Run("guest review readable anonymously", func(t *testing.T) {
		uow := &stubUnitOfWork{
			users:   &stubUserRepo{},
			reviews: &stubReviewRepo{found: &entity.CodeReview{Id: uuid.New(), Language: "go"}},
		}
		svc := newStubReviewService(uow, stubReviewJSON)

		res, err := svc.Show(context.Background(), nil, uuid.New())
		assert.NoError(t, err)
		assert.Equal(t, "go", res.Language)
	})
}
