package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/daffodil/backend/internal/infrastructure/config"
)

func TestBuildRaw(t *testing.T) {
	raw := string(buildRaw("orders@shop.example", "jane@example.com", "Order shipped", "On its way."))

	assert.True(t, strings.HasPrefix(raw, "From: orders@shop.example\r\n"))
	assert.Contains(t, raw, "To: jane@example.com\r\n")
	assert.Contains(t, raw, "Subject: Order shipped\r\n")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\nOn its way."))
}

func TestSMTPMailer_SendWithoutHost(t *testing.T) {
	mailer := NewSMTPMailer(config.SMTPConfig{}, zap.NewNop())

	// No host configured means log-and-continue, never an error.
	err := mailer.Send("jane@example.com", "Hello", "body")
	assert.NoError(t, err)
}
