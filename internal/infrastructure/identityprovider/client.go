package identityprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daffodil/backend/internal/domain/identity"
)

// Errors returned by the provider client
var (
	ErrNotConfigured = errors.New("identityprovider: base URL or API key not configured")
	ErrRequestFailed = errors.New("identityprovider: request failed")
)

// Client mirrors local moderation state to the hosted identity provider
// through its admin API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a provider client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetBanned updates the banned flag for a user on the provider side
func (c *Client) SetBanned(ctx context.Context, userID uuid.UUID, banned bool) error {
	if c.baseURL == "" || c.apiKey == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(map[string]bool{"banned": banned})
	if err != nil {
		return fmt.Errorf("identityprovider: failed to marshal request: %w", err)
	}

	url := c.baseURL + "/api/admin/users/" + userID.String()
	req, err := http.NewRequestWithContext(ctx, "PATCH", url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("identityprovider: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
	}
	return nil
}

// Ensure Client implements identity.ProviderMirror
var _ identity.ProviderMirror = (*Client)(nil)
