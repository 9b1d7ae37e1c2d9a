package payment

import (
	"context"
	"encoding/json"

	domain "github.com/daffodil/backend/internal/domain/payment"
)

// DisabledStripeGateway stands in for Stripe when no credentials are
// configured. Every call fails with ErrMissingCredentials, which the
// HTTP layer reports as 503.
type DisabledStripeGateway struct{}

func (DisabledStripeGateway) CreateCheckoutSession(ctx context.Context, items []domain.CheckoutItem, successURL, cancelURL string) (*domain.CheckoutSession, error) {
	return nil, domain.ErrMissingCredentials
}

// DisabledPayPalGateway stands in for PayPal when no credentials are
// configured.
type DisabledPayPalGateway struct{}

func (DisabledPayPalGateway) CreateOrder(ctx context.Context, items []domain.CheckoutItem) (string, error) {
	return "", domain.ErrMissingCredentials
}

func (DisabledPayPalGateway) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return nil, domain.ErrMissingCredentials
}

var (
	_ domain.StripeGateway = DisabledStripeGateway{}
	_ domain.PayPalGateway = DisabledPayPalGateway{}
)
