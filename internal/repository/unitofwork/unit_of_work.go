package unitofwork

import (
	"context"

	"buildhive-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CodeReviewRepository() contract.CodeReviewRepository
	ProjectRepository() contract.ProjectRepository
	InterestRepository() contract.InterestRepository
	PaymentEventRepository() contract.PaymentEventRepository
}
