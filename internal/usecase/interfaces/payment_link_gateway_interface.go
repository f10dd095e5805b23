package interfaces

import "context"

// IPaymentLinkGateway creates a hosted checkout link for the outstanding
// balance of an order. The gateway is optional: the receipt simply omits the
// link when no provider is configured.

type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, orderID int, description string, amount float64) (string, error)
}
