package service

import (
	"context"
	"time"

	"buildhive-be/internal/dto"
	"buildhive-be/internal/entity"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"
	"buildhive-be/pkg/uploader"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	PublicProfile(ctx context.Context, handle string) (*dto.PublicProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UpdateAvatar(ctx context.Context, userId uuid.UUID, image []byte) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	uploader   uploader.Uploader
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, up uploader.Uploader) IUserService {
	return &userService{
		uowFactory: uowFactory,
		uploader:   up,
	}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:                  u.Id,
		Email:               u.Email,
		Name:                u.Name,
		Image:               u.Image,
		Bio:                 u.Bio,
		GithubUsername:      u.GithubUsername,
		GithubURL:           u.GithubURL,
		Skills:              u.Skills,
		EmailVerified:       u.EmailVerified,
		Plan:                u.Plan,
		SubscriptionStatus:  u.SubscriptionStatus,
		SubscriptionEndDate: u.SubscriptionEndDate,
		CreatedAt:           u.CreatedAt,
	}
}

func (s *userService) findUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	res := toUserResponse(user)
	return &res, nil
}

// PublicProfile resolves a github username first and falls back to a
// raw user id, then attaches the member's open projects.
func (s *userService) PublicProfile(ctx context.Context, handle string) (*dto.PublicProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByGithubUsername{Username: handle})
	if err != nil {
		return nil, err
	}
	if user == nil {
		if id, parseErr := uuid.Parse(handle); parseErr == nil {
			user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
			if err != nil {
				return nil, err
			}
		}
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.ProjectOwnedBy{OwnerID: user.Id},
		specification.ByStatus{Status: string(entity.ProjectStatusOpen)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = toProjectResponse(p)
	}

	return &dto.PublicProfileResponse{
		User:     toUserResponse(user),
		Projects: items,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Bio = req.Bio
	user.GithubUsername = req.GithubUsername
	if req.GithubUsername != nil && *req.GithubUsername != "" {
		url := "https://github.com/" + *req.GithubUsername
		user.GithubURL = &url
	} else {
		user.GithubURL = nil
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userId uuid.UUID, image []byte) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, image)
	if err != nil {
		return nil, serverutils.BadRequest("Image upload failed")
	}

	user.Image = &url
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}
