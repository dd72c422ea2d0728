package contract

import (
	"context"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/repository/specification"
)

type CodeReviewRepository interface {
	Create(ctx context.Context, review *entity.CodeReview) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CodeReview, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CodeReview, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	AverageScore(ctx context.Context, specs ...specification.Specification) (float64, error)
	LanguageBreakdown(ctx context.Context, specs ...specification.Specification) (map[string]int64, error)
}
