package payment

import (
	"encoding/json"
	"fmt"
)

const (
	EventPaymentCaptured = "payment.captured"
	EventOrderPaid       = "order.paid"

	// WebhookSignatureHeader carries the hex HMAC of the raw body.
	WebhookSignatureHeader = "X-Razorpay-Signature"
)

// PaymentEntity is the payment object embedded in a webhook delivery.
// Notes round-trip whatever was attached at order creation.
type PaymentEntity struct {
	Id      string            `json:"id"`
	OrderId string            `json:"order_id"`
	Amount  int64             `json:"amount"`
	Notes   map[string]string `json:"notes"`
}

type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// ParseWebhookEvent decodes a delivery after its signature has been
// verified against the raw bytes.
func ParseWebhookEvent(rawBody []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return nil, fmt.Errorf("malformed webhook payload: %w", err)
	}
	if event.Event == "" {
		return nil, fmt.Errorf("webhook payload missing event type")
	}
	return &event, nil
}

// IsCaptureEvent reports whether the event should activate a subscription.
func (e *WebhookEvent) IsCaptureEvent() bool {
	return e.Event == EventPaymentCaptured || e.Event == EventOrderPaid
}
