package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"

	domain "github.com/daffodil/backend/internal/domain/payment"
)

// StripeAdapter implements StripeGateway using hosted Checkout sessions
type StripeAdapter struct {
	config *StripeConfig
	logger *zap.Logger
}

// NewStripeAdapter creates a new Stripe adapter
func NewStripeAdapter(config *StripeConfig, logger *zap.Logger) (*StripeAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.InitStripeClient()

	return &StripeAdapter{
		config: config,
		logger: logger,
	}, nil
}

// CreateCheckoutSession creates a hosted checkout session for the given
// cart. Unit amounts are the submitted prices converted to cents;
// quantities below one are raised to one.
func (a *StripeAdapter) CreateCheckoutSession(ctx context.Context, items []domain.CheckoutItem, successURL, cancelURL string) (*domain.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  buildLineItems(items, a.config.Currency),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		a.logger.Error("Failed to create Stripe checkout session", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayRequestFailed, err)
	}

	a.logger.Info("Created Stripe checkout session", zap.String("session_id", sess.ID))

	return &domain.CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// buildLineItems converts cart lines to Stripe line item params. Unit
// amounts are the submitted prices in cents, rounded half away from
// zero; quantities below one are raised to one.
func buildLineItems(items []domain.CheckoutItem, currency string) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		unitAmount := item.Price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(unitAmount),
			},
			Quantity: stripe.Int64(qty),
		})
	}
	return lineItems
}

// Ensure StripeAdapter implements StripeGateway
var _ domain.StripeGateway = (*StripeAdapter)(nil)
