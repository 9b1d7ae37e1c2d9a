package payment

import "errors"

// PayPalConfig contains configuration for the PayPal REST API
type PayPalConfig struct {
	// ClientID is the PayPal REST application client ID
	ClientID string
	// Secret is the PayPal REST application secret
	Secret string
	// IsSandbox indicates whether to use the sandbox environment
	IsSandbox bool
	// Currency is the ISO currency code used for all orders
	Currency string
}

// Errors for configuration validation
var (
	ErrPayPalMissingClientID = errors.New("paypal: missing client ID")
	ErrPayPalMissingSecret   = errors.New("paypal: missing secret")
)

// Validate validates the configuration
func (c *PayPalConfig) Validate() error {
	if c.ClientID == "" {
		return ErrPayPalMissingClientID
	}
	if c.Secret == "" {
		return ErrPayPalMissingSecret
	}
	if c.Currency == "" {
		c.Currency = "EUR"
	}
	return nil
}
