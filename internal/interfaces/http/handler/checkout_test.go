package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	checkoutapp "github.com/daffodil/backend/internal/application/checkout"
	"github.com/daffodil/backend/internal/domain/payment"
	infrapayment "github.com/daffodil/backend/internal/infrastructure/payment"
)

// MockStripeGateway is a mock implementation of payment.StripeGateway
type MockStripeGateway struct {
	mock.Mock
}

func (m *MockStripeGateway) CreateCheckoutSession(ctx context.Context, items []payment.CheckoutItem, successURL, cancelURL string) (*payment.CheckoutSession, error) {
	args := m.Called(ctx, items, successURL, cancelURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.CheckoutSession), args.Error(1)
}

// MockPayPalGateway is a mock implementation of payment.PayPalGateway
type MockPayPalGateway struct {
	mock.Mock
}

func (m *MockPayPalGateway) CreateOrder(ctx context.Context, items []payment.CheckoutItem) (string, error) {
	args := m.Called(ctx, items)
	return args.String(0), args.Error(1)
}

func (m *MockPayPalGateway) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func newCheckoutTestRouter() (*gin.Engine, *MockStripeGateway, *MockPayPalGateway) {
	gin.SetMode(gin.TestMode)
	stripe := new(MockStripeGateway)
	paypal := new(MockPayPalGateway)

	svc := checkoutapp.NewCheckoutService(stripe, paypal, "https://shop.example", zap.NewNop())
	handler := NewCheckoutHandler(svc)

	engine := gin.New()
	handler.RegisterPublicRoutes(engine.Group("/api/v1"))
	return engine, stripe, paypal
}

func TestCheckoutHandler_Stripe(t *testing.T) {
	t.Run("returns the hosted session", func(t *testing.T) {
		engine, stripe, _ := newCheckoutTestRouter()

		stripe.On("CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&payment.CheckoutSession{SessionID: "cs_123", URL: "https://checkout.stripe.com/c/cs_123"}, nil)

		body := `{"items":[{"name":"Spring Bouquet","price":24.5,"quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/stripe", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "cs_123")
	})

	t.Run("maps a gateway failure to 502", func(t *testing.T) {
		engine, stripe, _ := newCheckoutTestRouter()

		stripe.On("CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, payment.ErrGatewayRequestFailed)

		body := `{"items":[{"name":"Spring Bouquet","price":24.5,"quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/stripe", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestCheckoutHandler_DisabledGateways(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := checkoutapp.NewCheckoutService(
		infrapayment.DisabledStripeGateway{},
		infrapayment.DisabledPayPalGateway{},
		"https://shop.example", zap.NewNop())
	handler := NewCheckoutHandler(svc)

	engine := gin.New()
	handler.RegisterPublicRoutes(engine.Group("/api/v1"))

	t.Run("stripe answers 503 when unconfigured", func(t *testing.T) {
		body := `{"items":[{"name":"Spring Bouquet","price":24.5,"quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/stripe", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_UPSTREAM_FAILED")
	})

	t.Run("paypal capture answers 503 when unconfigured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/paypal/5O190127TN364715T/capture", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestCheckoutHandler_PayPalCapture(t *testing.T) {
	t.Run("relays the capture payload verbatim", func(t *testing.T) {
		engine, _, paypal := newCheckoutTestRouter()

		capture := json.RawMessage(`{"id":"5O190127TN364715T","status":"COMPLETED"}`)
		paypal.On("CaptureOrder", mock.Anything, "5O190127TN364715T").Return(capture, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/paypal/5O190127TN364715T/capture", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Capture json.RawMessage `json:"capture"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.JSONEq(t, string(capture), string(resp.Data.Capture))
	})
}
