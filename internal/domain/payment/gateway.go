package payment

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Common gateway errors
var (
	ErrEmptyCart            = errors.New("checkout requires at least one item")
	ErrMissingCredentials   = errors.New("payment gateway credentials not configured")
	ErrGatewayRequestFailed = errors.New("payment gateway request failed")
	ErrInvalidGatewayReply  = errors.New("payment gateway returned an unparseable response")
)

// CheckoutItem is a single cart line presented to a payment gateway.
// The price is taken as submitted; totals are never recomputed server side.
type CheckoutItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

// CheckoutSession is a hosted payment page created by a gateway
type CheckoutSession struct {
	SessionID string
	URL       string
}

// StripeGateway creates hosted checkout sessions
type StripeGateway interface {
	CreateCheckoutSession(ctx context.Context, items []CheckoutItem, successURL, cancelURL string) (*CheckoutSession, error)
}

// PayPalGateway drives the two-phase PayPal order flow. CaptureOrder
// returns the provider's response body verbatim so callers can relay it
// to the storefront unchanged.
type PayPalGateway interface {
	CreateOrder(ctx context.Context, items []CheckoutItem) (string, error)
	CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error)
}
