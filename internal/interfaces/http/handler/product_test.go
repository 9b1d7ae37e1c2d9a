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

	catalogapp "github.com/daffodil/backend/internal/application/catalog"
	"github.com/daffodil/backend/internal/domain/audit"
	"github.com/daffodil/backend/internal/domain/catalog"
	"github.com/daffodil/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, category catalog.Category) ([]catalog.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecorder is a mock implementation of audit.Recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, action audit.Action, entity, entityID string, payload any) {
	m.Called(ctx, action, entity, entityID, payload)
}

func newProductTestRouter() (*gin.Engine, *MockProductRepository) {
	gin.SetMode(gin.TestMode)
	repo := new(MockProductRepository)
	recorder := new(MockRecorder)
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	handler := NewProductHandler(catalogapp.NewProductService(repo, recorder))
	engine := gin.New()
	api := engine.Group("/api/v1")
	handler.RegisterPublicRoutes(api)
	handler.RegisterAdminRoutes(api.Group("/admin"))
	return engine, repo
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("coerces a garbage price string to zero", func(t *testing.T) {
		engine, repo := newProductTestRouter()

		repo.On("ExistsByID", mock.Anything, "tulip").Return(false, nil)
		var saved *catalog.Product
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*catalog.Product) }).
			Return(nil)

		body := `{"title":"Tulip","price":"not-a-price","category":"floral","stock":"4"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, saved.Price.IsZero())
		assert.Equal(t, 4, saved.Stock)
	})

	t.Run("rejects an unknown category at binding time", func(t *testing.T) {
		engine, repo := newProductTestRouter()

		body := `{"title":"Tulip","category":"vegetables"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	t.Run("maps a missing product to 404 in the envelope", func(t *testing.T) {
		engine, repo := newProductTestRouter()

		repo.On("FindByID", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/missing", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "ERR_NOT_FOUND", resp.Error.Code)
	})
}
