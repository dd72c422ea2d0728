package mapper

import (
	"buildhive-be/internal/entity"
	"buildhive-be/internal/model"
)

type ProjectMapper struct {
	userMapper *UserMapper
}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{userMapper: NewUserMapper()}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:          p.Id,
		OwnerId:     p.OwnerId,
		Title:       p.Title,
		Description: p.Description,
		TechStack:   jsonToStrings(p.TechStack),
		LookingFor:  p.LookingFor,
		Images:      jsonToStrings(p.Images),
		DemoURL:     p.DemoURL,
		RepoURL:     p.RepoURL,
		Difficulty:  p.Difficulty,
		Category:    p.Category,
		Status:      entity.ProjectStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Owner:       m.userMapper.ToEntity(p.Owner),
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:          p.Id,
		OwnerId:     p.OwnerId,
		Title:       p.Title,
		Description: p.Description,
		TechStack:   stringsToJSON(p.TechStack),
		LookingFor:  p.LookingFor,
		Images:      stringsToJSON(p.Images),
		DemoURL:     p.DemoURL,
		RepoURL:     p.RepoURL,
		Difficulty:  p.Difficulty,
		Category:    p.Category,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
