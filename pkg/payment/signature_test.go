package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyOrderPayment(t *testing.T) {
	const secret = "test_key_secret"
	sig := SignOrderPayment("order_123", "pay_456", secret)

	assert.True(t, VerifyOrderPayment("order_123", "pay_456", sig, secret))

	t.Run("tampered signature is rejected", func(t *testing.T) {
		tampered := sig[:len(sig)-1] + "0"
		if tampered == sig {
			tampered = sig[:len(sig)-1] + "1"
		}
		assert.False(t, VerifyOrderPayment("order_123", "pay_456", tampered, secret))
	})

	t.Run("different order id is rejected", func(t *testing.T) {
		assert.False(t, VerifyOrderPayment("order_999", "pay_456", sig, secret))
	})

	t.Run("different secret is rejected", func(t *testing.T) {
		assert.False(t, VerifyOrderPayment("order_123", "pay_456", sig, "other_secret"))
	})
}

func TestVerifyWebhookBody(t *testing.T) {
	const secret = "webhook_secret"
	body := []byte(`{"event":"payment.captured","payload":{}}`)
	sig := signBody(body, secret)

	assert.True(t, VerifyWebhookBody(body, sig, secret))

	t.Run("signature over different body is rejected", func(t *testing.T) {
		other := []byte(`{"event":"payment.captured","payload":{} }`)
		assert.False(t, VerifyWebhookBody(other, sig, secret))
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		assert.False(t, VerifyWebhookBody(nil, sig, secret))
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		assert.False(t, VerifyWebhookBody(body, sig, "other"))
	})
}

func TestParseWebhookEvent(t *testing.T) {
	raw := []byte(`{
		"event": "payment.captured",
		"payload": {
			"payment": {
				"entity": {
					"id": "pay_abc",
					"order_id": "order_abc",
					"amount": 49900,
					"notes": {"userId": "2f0b2c1e-55aa-4d8f-9d5e-3d2b1a0c9e8f", "plan": "PREMIUM"}
				}
			}
		}
	}`)

	event, err := ParseWebhookEvent(raw)
	assert.NoError(t, err)
	assert.True(t, event.IsCaptureEvent())
	assert.Equal(t, "pay_abc", event.Payload.Payment.Entity.Id)
	assert.Equal(t, "PREMIUM", event.Payload.Payment.Entity.Notes["plan"])

	t.Run("order.paid also activates", func(t *testing.T) {
		e := &WebhookEvent{Event: EventOrderPaid}
		assert.True(t, e.IsCaptureEvent())
	})

	t.Run("unrelated events do not activate", func(t *testing.T) {
		e := &WebhookEvent{Event: "payment.failed"}
		assert.False(t, e.IsCaptureEvent())
	})

	t.Run("malformed payload errors", func(t *testing.T) {
		_, err := ParseWebhookEvent([]byte("not json"))
		assert.Error(t, err)
	})

	t.Run("missing event type errors", func(t *testing.T) {
		_, err := ParseWebhookEvent([]byte(`{"payload":{}}`))
		assert.Error(t, err)
	})
}
