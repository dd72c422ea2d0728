package contract

import (
	"context"

	"buildhive-be/internal/entity"
)

type PaymentEventRepository interface {
	Create(ctx context.Context, event *entity.PaymentEvent) error
	FindByPaymentId(ctx context.Context, paymentId string) (*entity.PaymentEvent, error)
}
