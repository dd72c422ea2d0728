package contract

import (
	"context"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterestRepository interface {
	Create(ctx context.Context, interest *entity.Interest) error
	Update(ctx context.Context, interest *entity.Interest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interest, error)
}
