package checkout

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/daffodil/backend/internal/domain/payment"
)

// CheckoutService fronts the payment gateways for the storefront. It
// holds no state of its own; orders are recorded separately once the
// storefront confirms payment.
type CheckoutService struct {
	stripe        payment.StripeGateway
	paypal        payment.PayPalGateway
	publicBaseURL string
	logger        *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(stripe payment.StripeGateway, paypal payment.PayPalGateway, publicBaseURL string, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		stripe:        stripe,
		paypal:        paypal,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func toGatewayItems(items []CartItemRequest) []payment.CheckoutItem {
	out := make([]payment.CheckoutItem, len(items))
	for i, item := range items {
		out[i] = payment.CheckoutItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return out
}

// CreateStripeSession opens a hosted Stripe Checkout session. The
// storefront redirects the customer to the returned URL.
func (s *CheckoutService) CreateStripeSession(ctx context.Context, req StripeCheckoutRequest) (*StripeCheckoutResponse, error) {
	successURL := s.publicBaseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := s.publicBaseURL + "/cart"

	session, err := s.stripe.CreateCheckoutSession(ctx, toGatewayItems(req.Items), successURL, cancelURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stripe checkout session created",
		zap.String("session_id", session.SessionID),
		zap.Int("items", len(req.Items)))

	return &StripeCheckoutResponse{
		SessionID: session.SessionID,
		URL:       session.URL,
	}, nil
}

// CreatePayPalOrder opens a PayPal order for the submitted cart and
// returns the provider order id for client-side approval.
func (s *CheckoutService) CreatePayPalOrder(ctx context.Context, req PayPalCreateRequest) (*PayPalCreateResponse, error) {
	orderID, err := s.paypal.CreateOrder(ctx, toGatewayItems(req.Items))
	if err != nil {
		return nil, err
	}

	s.logger.Info("PayPal order created",
		zap.String("paypal_order_id", orderID),
		zap.Int("items", len(req.Items)))

	return &PayPalCreateResponse{OrderID: orderID}, nil
}

// CapturePayPalOrder captures an approved PayPal order. The provider's
// capture payload is relayed verbatim.
func (s *CheckoutService) CapturePayPalOrder(ctx context.Context, orderID string) (*PayPalCaptureResponse, error) {
	capture, err := s.paypal.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("PayPal order captured",
		zap.String("paypal_order_id", orderID))

	return &PayPalCaptureResponse{Capture: capture}, nil
}
