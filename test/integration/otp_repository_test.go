package integration

import (
	"context"
	"testing"
	"time"

	"buildhive-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOtpLifecycle(t *testing.T) {
	factory := newTestFactory(t)
	uow := factory.NewUnitOfWork(context.Background())
	ctx := context.Background()

	email := "otp-integration-" + uuid.New().String() + "@example.com"

	t.Run("Upsert creates then overwrites", func(t *testing.T) {
		err := uow.UserRepository().UpsertOtp(ctx, &entity.Otp{
			Email:     email,
			Code:      "111111",
			ExpiresAt: time.Now().Add(10 * time.Minute),
			CreatedAt: time.Now(),
		})
		assert.NoError(t, err)

		// A second request replaces the outstanding code instead of
		// inserting another row.
		err = uow.UserRepository().UpsertOtp(ctx, &entity.Otp{
			Email:     email,
			Code:      "222222",
			ExpiresAt: time.Now().Add(10 * time.Minute),
			CreatedAt: time.Now(),
		})
		assert.NoError(t, err)

		otp, err := uow.UserRepository().FindOtpByEmail(ctx, email)
		assert.NoError(t, err)
		assert.NotNil(t, otp)
		assert.Equal(t, "222222", otp.Code)
	})

	t.Run("Delete makes the code single use", func(t *testing.T) {
		err := uow.UserRepository().DeleteOtp(ctx, email)
		assert.NoError(t, err)

		otp, err := uow.UserRepository().FindOtpByEmail(ctx, email)
		assert.NoError(t, err)
		assert.Nil(t, otp)
	})

	t.Run("Unknown email returns nil without error", func(t *testing.T) {
		otp, err := uow.UserRepository().FindOtpByEmail(ctx, "nobody-"+uuid.New().String()+"@example.com")
		assert.NoError(t, err)
		assert.Nil(t, otp)
	})
}
