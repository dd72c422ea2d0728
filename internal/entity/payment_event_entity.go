package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEvent records a webhook delivery that has already been applied,
// keyed by the gateway payment id. Re-deliveries of the same payment are
// a no-op instead of extending the subscription again.
type PaymentEvent struct {
	PaymentId   string
	Event       string
	UserId      uuid.UUID
	Plan        string
	ProcessedAt time.Time
}
