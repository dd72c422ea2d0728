package mapper

import (
	"buildhive-be/internal/entity"
	"buildhive-be/internal/model"
	"buildhive-be/pkg/review"
)

type CodeReviewMapper struct{}

func NewCodeReviewMapper() *CodeReviewMapper {
	return &CodeReviewMapper{}
}

func (m *CodeReviewMapper) ToEntity(r *model.CodeReview) *entity.CodeReview {
	if r == nil {
		return nil
	}
	return &entity.CodeReview{
		Id:          r.Id,
		UserId:      r.UserId,
		Code:        r.Code,
		Language:    r.Language,
		Score:       r.Score,
		Issues:      jsonToStruct[review.Issue](r.Issues),
		Suggestions: jsonToStruct[review.Suggestion](r.Suggestions),
		Resources:   jsonToStruct[review.Resource](r.Resources),
		CreatedAt:   r.CreatedAt,
	}
}

func (m *CodeReviewMapper) ToModel(r *entity.CodeReview) *model.CodeReview {
	if r == nil {
		return nil
	}
	return &model.CodeReview{
		Id:          r.Id,
		UserId:      r.UserId,
		Code:        r.Code,
		Language:    r.Language,
		Score:       r.Score,
		Issues:      structToJSON(r.Issues),
		Suggestions: structToJSON(r.Suggestions),
		Resources:   structToJSON(r.Resources),
		CreatedAt:   r.CreatedAt,
	}
}

func (m *CodeReviewMapper) ToEntities(reviews []*model.CodeReview) []*entity.CodeReview {
	entities := make([]*entity.CodeReview, len(reviews))
	for i, r := range reviews {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
