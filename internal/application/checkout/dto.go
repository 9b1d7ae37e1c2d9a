package checkout

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartItemRequest is a single cart line as submitted by the storefront.
// Prices arrive as submitted and are never recomputed.
type CartItemRequest struct {
	Name     string          `json:"name" binding:"required,max=200"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// StripeCheckoutRequest opens a hosted Stripe Checkout session
type StripeCheckoutRequest struct {
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`
}

// StripeCheckoutResponse carries the hosted session back to the storefront
type StripeCheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// PayPalCreateRequest opens a PayPal order for the submitted cart
type PayPalCreateRequest struct {
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PayPalCreateResponse carries the provider order id back to the storefront
type PayPalCreateResponse struct {
	OrderID string `json:"order_id"`
}

// PayPalCaptureResponse relays the provider capture payload verbatim
type PayPalCaptureResponse struct {
	Capture json.RawMessage `json:"capture"`
}
