package implementation

import (
	"context"
	"errors"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/mapper"
	"buildhive-be/internal/model"
	"buildhive-be/internal/repository/contract"

	"gorm.io/gorm"
)

type PaymentEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentEventMapper
}

func NewPaymentEventRepository(db *gorm.DB) contract.PaymentEventRepository {
	return &PaymentEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentEventMapper(),
	}
}

func (r *PaymentEventRepositoryImpl) Create(ctx context.Context, event *entity.PaymentEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentEventRepositoryImpl) FindByPaymentId(ctx context.Context, paymentId string) (*entity.PaymentEvent, error) {
	var m model.PaymentEvent
	if err := r.db.WithContext(ctx).Where("payment_id = ?", paymentId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
