package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the subset of a gateway order the checkout client needs.
type Order struct {
	Id       string
	Amount   int64
	Currency string
}

// Gateway creates hosted-checkout orders. Notes travel opaquely with the
// order and come back in webhook payment entities.
type Gateway interface {
	CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (*Order, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyId, keySecret string) Gateway {
	return &razorpayGateway{
		client: razorpay.NewClient(keyId, keySecret),
	}
}

func (g *razorpayGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("razorpay order create: missing order id in response")
	}

	order := &Order{Id: id, Amount: amount, Currency: currency}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	return order, nil
}
