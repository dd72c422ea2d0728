package mapper

import (
	"buildhive-be/internal/entity"
	"buildhive-be/internal/model"
)

type PaymentEventMapper struct{}

func NewPaymentEventMapper() *PaymentEventMapper {
	return &PaymentEventMapper{}
}

func (m *PaymentEventMapper) ToEntity(e *model.PaymentEvent) *entity.PaymentEvent {
	if e == nil {
		return nil
	}
	return &entity.PaymentEvent{
		PaymentId:   e.PaymentId,
		Event:       e.Event,
		UserId:      e.UserId,
		Plan:        e.Plan,
		ProcessedAt: e.ProcessedAt,
	}
}

func (m *PaymentEventMapper) ToModel(e *entity.PaymentEvent) *model.PaymentEvent {
	if e == nil {
		return nil
	}
	return &model.PaymentEvent{
		PaymentId:   e.PaymentId,
		Event:       e.Event,
		UserId:      e.UserId,
		Plan:        e.Plan,
		ProcessedAt: e.ProcessedAt,
	}
}
