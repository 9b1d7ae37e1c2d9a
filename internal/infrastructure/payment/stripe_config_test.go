package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripeConfig_Validate(t *testing.T) {
	t.Run("requires secret key", func(t *testing.T) {
		cfg := &StripeConfig{}
		assert.Error(t, cfg.Validate())
	})

	t.Run("defaults currency", func(t *testing.T) {
		cfg := &StripeConfig{SecretKey: "sk_test_123"}
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, "eur", cfg.Currency)
	})
}
