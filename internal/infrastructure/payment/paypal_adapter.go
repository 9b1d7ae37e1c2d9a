package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/daffodil/backend/internal/domain/payment"
)

const (
	paypalBaseURL        = "https://api-m.paypal.com"
	paypalSandboxBaseURL = "https://api-m.sandbox.paypal.com"
)

// PayPalAdapter implements the PayPalGateway interface using the PayPal
// REST v2 checkout API.
type PayPalAdapter struct {
	config     *PayPalConfig
	httpClient *http.Client
	baseURL    string
}

// NewPayPalAdapter creates a new PayPal adapter
func NewPayPalAdapter(config *PayPalConfig) (*PayPalAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL := paypalBaseURL
	if config.IsSandbox {
		baseURL = paypalSandboxBaseURL
	}

	return &PayPalAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}, nil
}

// CreateOrder creates a PayPal order for the given cart and returns the
// provider order ID. A fresh access token is obtained for every call;
// tokens are never cached.
func (a *PayPalAdapter) CreateOrder(ctx context.Context, items []domain.CheckoutItem) (string, error) {
	if len(items) == 0 {
		return "", domain.ErrEmptyCart
	}

	token, err := a.fetchAccessToken(ctx)
	if err != nil {
		return "", err
	}

	total := decimal.Zero
	paypalItems := make([]paypalItem, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(qty)))
		paypalItems = append(paypalItems, paypalItem{
			Name: item.Name,
			UnitAmount: paypalAmount{
				CurrencyCode: a.config.Currency,
				Value:        item.Price.StringFixed(2),
			},
			Quantity: strconv.FormatInt(qty, 10),
		})
	}

	orderReq := paypalCreateOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{{
			Amount: paypalAmountWithBreakdown{
				CurrencyCode: a.config.Currency,
				Value:        total.StringFixed(2),
				Breakdown: &paypalBreakdown{
					ItemTotal: paypalAmount{
						CurrencyCode: a.config.Currency,
						Value:        total.StringFixed(2),
					},
				},
			},
			Items: paypalItems,
		}},
		ApplicationContext: paypalApplicationContext{
			ShippingPreference: "NO_SHIPPING",
		},
	}

	body, err := json.Marshal(orderReq)
	if err != nil {
		return "", fmt.Errorf("paypal: failed to marshal order request: %w", err)
	}

	respBody, err := a.doRequest(ctx, "POST", "/v2/checkout/orders", token, body)
	if err != nil {
		return "", err
	}

	var orderResp paypalCreateOrderResponse
	if err := json.Unmarshal(respBody, &orderResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidGatewayReply, err)
	}
	if orderResp.ID == "" {
		return "", fmt.Errorf("%w: response carries no order id", domain.ErrInvalidGatewayReply)
	}

	return orderResp.ID, nil
}

// CaptureOrder captures a previously approved order and returns the
// provider response body unchanged.
func (a *PayPalAdapter) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: empty order id", domain.ErrGatewayRequestFailed)
	}

	token, err := a.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	path := "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture"
	respBody, err := a.doRequest(ctx, "POST", path, token, []byte("{}"))
	if err != nil {
		return nil, err
	}

	return json.RawMessage(respBody), nil
}

// fetchAccessToken exchanges the client credentials for an access token
func (a *PayPalAdapter) fetchAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("paypal: failed to create token request: %w", err)
	}
	req.SetBasicAuth(a.config.ClientID, a.config.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGatewayRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("paypal: failed to read token response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: token endpoint returned HTTP %d", domain.ErrGatewayRequestFailed, resp.StatusCode)
	}

	var tokenResp paypalTokenResponse
	if err := json.Unmarshal(respBody, &tokenResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidGatewayReply, err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: token response carries no access token", domain.ErrInvalidGatewayReply)
	}

	return tokenResp.AccessToken, nil
}

// doRequest performs an authenticated JSON request against the PayPal API
func (a *PayPalAdapter) doRequest(ctx context.Context, method, path, token string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("paypal: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("paypal: failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrGatewayRequestFailed, resp.StatusCode)
	}

	return respBody, nil
}

// Ensure PayPalAdapter implements PayPalGateway
var _ domain.PayPalGateway = (*PayPalAdapter)(nil)
