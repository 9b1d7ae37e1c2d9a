package identity

import (
	"context"

	"github.com/daffodil/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
	Save(ctx context.Context, user *User) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ProviderMirror pushes moderation state to the hosted identity provider
type ProviderMirror interface {
	SetBanned(ctx context.Context, userID uuid.UUID, banned bool) error
}
