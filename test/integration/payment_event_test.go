package integration

import (
	"context"
	"testing"
	"time"

	"buildhive-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPaymentEventLedger(t *testing.T) {
	factory := newTestFactory(t)
	uow := factory.NewUnitOfWork(context.Background())
	ctx := context.Background()

	user := createTestUser(t, uow)
	paymentId := "pay_integration_" + uuid.New().String()

	t.Run("First delivery is recorded", func(t *testing.T) {
		err := uow.PaymentEventRepository().Create(ctx, &entity.PaymentEvent{
			PaymentId:   paymentId,
			Event:       "payment.captured",
			UserId:      user.Id,
			Plan:        "PREMIUM",
			ProcessedAt: time.Now(),
		})
		assert.NoError(t, err)

		found, err := uow.PaymentEventRepository().FindByPaymentId(ctx, paymentId)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "PREMIUM", found.Plan)
		assert.Equal(t, user.Id, found.UserId)
	})

	t.Run("Replayed payment id is rejected by the primary key", func(t *testing.T) {
		err := uow.PaymentEventRepository().Create(ctx, &entity.PaymentEvent{
			PaymentId:   paymentId,
			Event:       "payment.captured",
			UserId:      user.Id,
			Plan:        "PRO",
			ProcessedAt: time.Now(),
		})
		assert.Error(t, err)

		// The original record stays untouched.
		found, err := uow.PaymentEventRepository().FindByPaymentId(ctx, paymentId)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "PREMIUM", found.Plan)
	})

	t.Run("Unknown payment id returns nil without error", func(t *testing.T) {
		found, err := uow.PaymentEventRepository().FindByPaymentId(ctx, "pay_missing_"+uuid.New().String())
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
