package external

import "context"

// GatewayOrder is what a payment gateway hands back for a newly created
// collect order. The short URL (when present) is sent to the customer.
type GatewayOrder struct {
	OrderID  string
	Amount   float64
	Currency string
	Status   string
	ShortURL string
}

// PaymentGateway abstracts the online payment providers. The active
// provider is chosen per request from the settings table.
type PaymentGateway interface {
	Name() string
	CreateOrder(ctx context.Context, amount float64, receipt string) (*GatewayOrder, error)
}
