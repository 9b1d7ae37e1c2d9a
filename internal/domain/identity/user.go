package identity

import (
	"strings"
	"time"

	"github.com/daffodil/backend/internal/domain/shared"
)

// User mirrors an account created by the hosted identity provider on
// first login. Only the moderation flags are mutated locally.
type User struct {
	shared.BaseEntity
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string `gorm:"type:varchar(200)"`
	IsAdmin   bool   `gorm:"not null;default:false"`
	Suspended bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user record for a first-seen identity-provider account
func NewUser(email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email address is required")
	}

	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		Name:       name,
	}, nil
}

// SetAdmin toggles the admin flag
func (u *User) SetAdmin(isAdmin bool) {
	u.IsAdmin = isAdmin
	u.UpdatedAt = time.Now()
}

// SetSuspended toggles the suspension flag. The identity-provider
// "banned" state is mirrored separately, best effort.
func (u *User) SetSuspended(suspended bool) {
	u.Suspended = suspended
	u.UpdatedAt = time.Now()
}

// CanAccessAdmin returns true if the user may use back-office endpoints
func (u *User) CanAccessAdmin() bool {
	return u.IsAdmin && !u.Suspended
}
