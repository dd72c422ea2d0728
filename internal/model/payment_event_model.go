package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEvent records gateway deliveries that were already applied.
// The primary key makes webhook re-delivery a no-op.
type PaymentEvent struct {
	PaymentId   string    `gorm:"type:varchar(255);primaryKey"`
	Event       string    `gorm:"type:varchar(100);not null"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Plan        string    `gorm:"type:varchar(50);not null"`
	ProcessedAt time.Time `gorm:"autoCreateTime"`
}

func (PaymentEvent) TableName() string {
	return "payment_events"
}
