package catalog

import (
	"context"

	"github.com/daffodil/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	// FindActive returns active products, optionally filtered by category
	// (empty category means all), newest first.
	FindActive(ctx context.Context, category Category) ([]Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
