package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daffodil/backend/internal/infrastructure/auth"
	"github.com/daffodil/backend/internal/infrastructure/config"
)

func newAuthTestRouter() (*gin.Engine, *auth.JWTService, *auth.InMemoryTokenBlacklist) {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars-long",
		Expiration: time.Hour,
		Issuer:     "daffodil-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	engine := gin.New()
	engine.GET("/admin/ping", AdminAuth(jwtService, blacklist), func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.Email)
	})
	return engine, jwtService, blacklist
}

func doRequest(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAdminAuth(t *testing.T) {
	t.Run("rejects a missing token", func(t *testing.T) {
		engine, _, _ := newAuthTestRouter()
		assert.Equal(t, http.StatusUnauthorized, doRequest(engine, "").Code)
	})

	t.Run("admits an admin token", func(t *testing.T) {
		engine, jwtService, _ := newAuthTestRouter()

		token, err := jwtService.GenerateToken(uuid.New(), "admin@example.com", true)
		require.NoError(t, err)

		w := doRequest(engine, token.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin@example.com", w.Body.String())
	})

	t.Run("rejects a non-admin token", func(t *testing.T) {
		engine, jwtService, _ := newAuthTestRouter()

		token, err := jwtService.GenerateToken(uuid.New(), "user@example.com", false)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, doRequest(engine, token.AccessToken).Code)
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		engine, jwtService, blacklist := newAuthTestRouter()

		token, err := jwtService.GenerateToken(uuid.New(), "admin@example.com", true)
		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(token.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		assert.Equal(t, http.StatusUnauthorized, doRequest(engine, token.AccessToken).Code)
	})
}
