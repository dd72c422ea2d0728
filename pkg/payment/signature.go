package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignOrderPayment computes the hex HMAC-SHA256 the gateway attaches to a
// synchronous checkout confirmation: HMAC(secret, orderId + "|" + paymentId).
func SignOrderPayment(orderId, paymentId, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderId + "|" + paymentId))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyOrderPayment checks a client-supplied confirmation signature.
func VerifyOrderPayment(orderId, paymentId, signature, secret string) bool {
	expected := SignOrderPayment(orderId, paymentId, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookBody checks the asynchronous delivery signature, computed
// over the exact raw request bytes with the webhook-specific secret. Any
// re-serialization of the body before this point breaks the comparison.
func VerifyWebhookBody(rawBody []byte, signature, secret string) bool {
	if len(rawBody) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
