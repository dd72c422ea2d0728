package dto

import "time"

type CreateOrderRequest struct {
	Plan string `json:"plan" validate:"required,oneof=PREMIUM PRO"`
}

type CreateOrderResponse struct {
	OrderId  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyId    string `json:"keyId"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderId   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentId string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	Plan              string `json:"plan" validate:"required,oneof=PREMIUM PRO"`
}

type SubscriptionStatusResponse struct {
	Plan        string     `json:"plan"`
	Usage       int64      `json:"usage"`
	Limit       int        `json:"limit"`
	PercentUsed int        `json:"percentUsed"`
	ResetTime   time.Time  `json:"resetTime"`
	Status      string     `json:"status"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}
