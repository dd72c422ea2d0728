package contract

import (
	"context"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)

	// OTP records are keyed by email, one live code per address.
	UpsertOtp(ctx context.Context, otp *entity.Otp) error
	FindOtpByEmail(ctx context.Context, email string) (*entity.Otp, error)
	DeleteOtp(ctx context.Context, email string) error
}
