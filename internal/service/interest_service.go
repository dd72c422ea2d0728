package service

import (
	"context"
	"time"

	"buildhive-be/internal/dto"
	"buildhive-be/internal/entity"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"
	"buildhive-be/pkg/events"
	pktNats "buildhive-be/pkg/nats"

	"github.com/google/uuid"
)

type IInterestService interface {
	Express(ctx context.Context, userId, projectId uuid.UUID, req *dto.ExpressInterestRequest) (*dto.InterestResponse, error)
	StatusFor(ctx context.Context, userId, projectId uuid.UUID) (*string, error)
	ListForProject(ctx context.Context, ownerId, projectId uuid.UUID) ([]dto.InterestResponse, error)
	MyInterests(ctx context.Context, userId uuid.UUID) ([]dto.InterestResponse, error)
	UpdateStatus(ctx context.Context, ownerId, interestId uuid.UUID, req *dto.UpdateInterestStatusRequest) (*dto.InterestResponse, error)
}

type interestService struct {
	uowFactory     unitofwork.RepositoryFactory
	notifications  INotificationService
	eventPublisher *pktNats.Publisher
}

func NewInterestService(uowFactory unitofwork.RepositoryFactory, notifications INotificationService, eventPublisher *pktNats.Publisher) IInterestService {
	return &interestService{
		uowFactory:     uowFactory,
		notifications:  notifications,
		eventPublisher: eventPublisher,
	}
}

func toInterestResponse(i *entity.Interest) dto.InterestResponse {
	res := dto.InterestResponse{
		Id:        i.Id,
		ProjectId: i.ProjectId,
		UserId:    i.UserId,
		Message:   i.Message,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
	}
	if i.Applicant != nil {
		applicant := toUserResponse(i.Applicant)
		res.Applicant = &applicant
	}
	if i.Project != nil {
		project := toProjectResponse(i.Project)
		res.Project = &project
	}
	return res
}

func (s *interestService) Express(ctx context.Context, userId, projectId uuid.UUID, req *dto.ExpressInterestRequest) (*dto.InterestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.Preload{Association: "Owner"},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NotFound("Project not found")
	}
	if project.OwnerId == userId {
		return nil, serverutils.BadRequest("You cannot apply to your own project")
	}

	existing, err := uow.InterestRepository().FindOne(ctx,
		specification.ByProject{ProjectID: projectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.BadRequest("You have already expressed interest in this project")
	}

	applicant, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, serverutils.Unauthorized("User not found")
	}

	interest := &entity.Interest{
		Id:        uuid.New(),
		ProjectId: projectId,
		UserId:    userId,
		Message:   req.Message,
		Status:    entity.InterestStatusPending,
		CreatedAt: time.Now(),
	}
	if err := uow.InterestRepository().Create(ctx, interest); err != nil {
		return nil, err
	}

	if project.Owner != nil {
		s.notifications.PublishInterest(InterestNotification{
			OwnerEmail:    project.Owner.Email,
			ProjectTitle:  project.Title,
			ApplicantName: applicant.Name,
			Message:       req.Message,
		})
	}
	s.publishExpressed(ctx, interest)

	res := toInterestResponse(interest)
	return &res, nil
}

func (s *interestService) StatusFor(ctx context.Context, userId, projectId uuid.UUID) (*string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	interest, err := uow.InterestRepository().FindOne(ctx,
		specification.ByProject{ProjectID: projectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if interest == nil {
		return nil, nil
	}
	status := string(interest.Status)
	return &status, nil
}

func (s *interestService) ListForProject(ctx context.Context, ownerId, projectId uuid.UUID) ([]dto.InterestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NotFound("Project not found")
	}
	if project.OwnerId != ownerId {
		return nil, serverutils.Forbidden("You do not own this project")
	}

	interests, err := uow.InterestRepository().FindAll(ctx,
		specification.ByProject{ProjectID: projectId},
		specification.Preload{Association: "Applicant"},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InterestResponse, len(interests))
	for i, it := range interests {
		items[i] = toInterestResponse(it)
	}
	return items, nil
}

func (s *interestService) MyInterests(ctx context.Context, userId uuid.UUID) ([]dto.InterestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	interests, err := uow.InterestRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Preload{Association: "Project"},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InterestResponse, len(interests))
	for i, it := range interests {
		items[i] = toInterestResponse(it)
	}
	return items, nil
}

func (s *interestService) UpdateStatus(ctx context.Context, ownerId, interestId uuid.UUID, req *dto.UpdateInterestStatusRequest) (*dto.InterestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interest, err := uow.InterestRepository().FindOne(ctx,
		specification.ByID{ID: interestId},
		specification.Preload{Association: "Project"},
	)
	if err != nil {
		return nil, err
	}
	if interest == nil {
		return nil, serverutils.NotFound("Interest not found")
	}
	if interest.Project == nil || interest.Project.OwnerId != ownerId {
		return nil, serverutils.Forbidden("You do not own this project")
	}

	interest.Status = entity.InterestStatus(req.Status)
	if err := uow.InterestRepository().Update(ctx, interest); err != nil {
		return nil, err
	}

	res := toInterestResponse(interest)
	return &res, nil
}

func (s *interestService) publishExpressed(ctx context.Context, interest *entity.Interest) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events.New(events.InterestExpressed, map[string]interface{}{
		"interest_id": interest.Id.String(),
		"project_id":  interest.ProjectId.String(),
		"user_id":     interest.UserId.String(),
	}))
}
