package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

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

func newProductService() (*ProductService, *MockProductRepository, *MockRecorder) {
	repo := new(MockProductRepository)
	recorder := new(MockRecorder)
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return NewProductService(repo, recorder), repo, recorder
}

func TestProductService_Create(t *testing.T) {
	t.Run("derives slug and saves", func(t *testing.T) {
		svc, repo, recorder := newProductService()

		repo.On("ExistsByID", mock.Anything, "spring-bouquet").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := svc.Create(context.Background(), CreateProductRequest{
			Title:    "Spring Bouquet!!",
			Price:    decimal.RequireFromString("24.50"),
			Category: "floral",
			Stock:    5,
		})

		require.NoError(t, err)
		assert.Equal(t, "spring-bouquet", resp.ID)
		assert.Equal(t, "active", resp.Status)
		repo.AssertExpectations(t)
		recorder.AssertCalled(t, "Record", mock.Anything, audit.ActionCreate, "product", "spring-bouquet", mock.Anything)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		svc, repo, _ := newProductService()

		repo.On("ExistsByID", mock.Anything, "rose").Return(true, nil)

		_, err := svc.Create(context.Background(), CreateProductRequest{
			Title:    "Rose",
			Category: "floral",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("clamps negative price and stock to zero", func(t *testing.T) {
		svc, repo, _ := newProductService()

		repo.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil)
		var saved *catalog.Product
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*catalog.Product) }).
			Return(nil)

		_, err := svc.Create(context.Background(), CreateProductRequest{
			Title:    "Tulip",
			Price:    decimal.NewFromInt(-10),
			Category: "floral",
			Stock:    -3,
		})

		require.NoError(t, err)
		assert.True(t, saved.Price.IsZero())
		assert.Equal(t, 0, saved.Stock)
	})
}

func TestProductService_Import(t *testing.T) {
	t.Run("creates new, skips existing, reports invalid", func(t *testing.T) {
		svc, repo, recorder := newProductService()

		repo.On("ExistsByID", mock.Anything, "tulip").Return(false, nil)
		repo.On("ExistsByID", mock.Anything, "rose").Return(true, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil).Once()

		result, err := svc.Import(context.Background(), ImportProductsRequest{
			Items: []CreateProductRequest{
				{Title: "Tulip", Price: decimal.NewFromInt(5), Category: "floral"},
				{Title: "Rose", Category: "floral"},
				{Title: "Mystery", Category: "vegetables"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "item 2")
		repo.AssertExpectations(t)
		recorder.AssertCalled(t, "Record", mock.Anything, audit.ActionImport, "product", "bulk", mock.Anything)
	})

	t.Run("stops on repository failure", func(t *testing.T) {
		svc, repo, _ := newProductService()

		repo.On("ExistsByID", mock.Anything, "tulip").Return(false, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := svc.Import(context.Background(), ImportProductsRequest{
			Items: []CreateProductRequest{{Title: "Tulip", Category: "floral"}},
		})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestProductService_Update(t *testing.T) {
	existing := func() *catalog.Product {
		p, err := catalog.NewProduct("", "Spring Bouquet", "fresh", decimal.NewFromInt(30),
			catalog.CategoryFloral, 10, []string{"a.jpg"})
		if err != nil {
			panic(err)
		}
		return p
	}

	t.Run("applies only supplied fields", func(t *testing.T) {
		svc, repo, _ := newProductService()

		product := existing()
		repo.On("FindByID", mock.Anything, "spring-bouquet").Return(product, nil)
		repo.On("Save", mock.Anything, product).Return(nil)

		newPrice := decimal.RequireFromString("35.00")
		resp, err := svc.Update(context.Background(), "spring-bouquet", UpdateProductRequest{
			Price: &newPrice,
		})

		require.NoError(t, err)
		assert.True(t, resp.Price.Equal(newPrice))
		// untouched fields survive
		assert.Equal(t, "Spring Bouquet", resp.Title)
		assert.Equal(t, 10, resp.Stock)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, repo, _ := newProductService()

		repo.On("FindByID", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

		_, err := svc.Update(context.Background(), "missing", UpdateProductRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		svc, repo, _ := newProductService()

		product := existing()
		repo.On("FindByID", mock.Anything, "spring-bouquet").Return(product, nil)

		bad := "archived"
		_, err := svc.Update(context.Background(), "spring-bouquet", UpdateProductRequest{Status: &bad})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_ListActive(t *testing.T) {
	t.Run("rejects unknown category", func(t *testing.T) {
		svc, _, _ := newProductService()

		_, err := svc.ListActive(context.Background(), "vegetables")
		assert.Error(t, err)
	})

	t.Run("passes empty category through", func(t *testing.T) {
		svc, repo, _ := newProductService()

		repo.On("FindActive", mock.Anything, catalog.Category("")).Return([]catalog.Product{}, nil)

		resp, err := svc.ListActive(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, resp)
		repo.AssertExpectations(t)
	})
}
