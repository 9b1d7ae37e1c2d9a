package identityprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SetBanned(t *testing.T) {
	t.Run("sends authenticated PATCH with banned flag", func(t *testing.T) {
		userID := uuid.New()
		var gotPath, gotAuth string
		var gotBody map[string]bool

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, "PATCH", r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, "admin-key")
		err := client.SetBanned(context.Background(), userID, true)

		require.NoError(t, err)
		assert.Equal(t, "/api/admin/users/"+userID.String(), gotPath)
		assert.Equal(t, "Bearer admin-key", gotAuth)
		assert.Equal(t, map[string]bool{"banned": true}, gotBody)
	})

	t.Run("surfaces provider errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(server.URL, "bad-key")
		err := client.SetBanned(context.Background(), uuid.New(), false)

		assert.ErrorIs(t, err, ErrRequestFailed)
	})

	t.Run("fails fast when not configured", func(t *testing.T) {
		client := NewClient("", "")
		err := client.SetBanned(context.Background(), uuid.New(), true)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
