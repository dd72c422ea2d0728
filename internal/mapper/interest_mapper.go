package mapper

import (
	"buildhive-be/internal/entity"
	"buildhive-be/internal/model"
)

type InterestMapper struct {
	userMapper    *UserMapper
	projectMapper *ProjectMapper
}

func NewInterestMapper() *InterestMapper {
	return &InterestMapper{
		userMapper:    NewUserMapper(),
		projectMapper: NewProjectMapper(),
	}
}

func (m *InterestMapper) ToEntity(i *model.Interest) *entity.Interest {
	if i == nil {
		return nil
	}
	return &entity.Interest{
		Id:        i.Id,
		ProjectId: i.ProjectId,
		UserId:    i.UserId,
		Message:   i.Message,
		Status:    entity.InterestStatus(i.Status),
		CreatedAt: i.CreatedAt,
		Applicant: m.userMapper.ToEntity(i.Applicant),
		Project:   m.projectMapper.ToEntity(i.Project),
	}
}

func (m *InterestMapper) ToModel(i *entity.Interest) *model.Interest {
	if i == nil {
		return nil
	}
	return &model.Interest{
		Id:        i.Id,
		ProjectId: i.ProjectId,
		UserId:    i.UserId,
		Message:   i.Message,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
	}
}

func (m *InterestMapper) ToEntities(interests []*model.Interest) []*entity.Interest {
	entities := make([]*entity.Interest, len(interests))
	for i, it := range interests {
		entities[i] = m.ToEntity(it)
	}
	return entities
}
