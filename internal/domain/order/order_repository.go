package order

import (
	"context"

	"github.com/daffodil/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence operations for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	// FindEmailCandidates returns every order whose customer email is
	// missing or differs from the given one. This is an unbounded scan:
	// acceptable at this catalog's volumes, a known limit beyond them.
	FindEmailCandidates(ctx context.Context, email string) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
