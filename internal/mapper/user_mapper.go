package mapper

import (
	"buildhive-be/internal/entity"
	"buildhive-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                  u.Id,
		Email:               u.Email,
		Name:                u.Name,
		Image:               u.Image,
		Bio:                 u.Bio,
		GithubUsername:      u.GithubUsername,
		GithubURL:           u.GithubURL,
		Skills:              jsonToStrings(u.Skills),
		EmailVerified:       u.EmailVerified,
		Plan:                u.Plan,
		SubscriptionStatus:  u.SubscriptionStatus,
		SubscriptionEndDate: u.SubscriptionEndDate,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                  u.Id,
		Email:               u.Email,
		Name:                u.Name,
		Image:               u.Image,
		Bio:                 u.Bio,
		GithubUsername:      u.GithubUsername,
		GithubURL:           u.GithubURL,
		Skills:              stringsToJSON(u.Skills),
		EmailVerified:       u.EmailVerified,
		Plan:                u.Plan,
		SubscriptionStatus:  u.SubscriptionStatus,
		SubscriptionEndDate: u.SubscriptionEndDate,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) OtpToEntity(o *model.Otp) *entity.Otp {
	if o == nil {
		return nil
	}
	return &entity.Otp{
		Email:     o.Email,
		Code:      o.Code,
		ExpiresAt: o.ExpiresAt,
		CreatedAt: o.CreatedAt,
	}
}

func (m *UserMapper) OtpToModel(o *entity.Otp) *model.Otp {
	if o == nil {
		return nil
	}
	return &model.Otp{
		Email:     o.Email,
		Code:      o.Code,
		ExpiresAt: o.ExpiresAt,
		CreatedAt: o.CreatedAt,
	}
}
