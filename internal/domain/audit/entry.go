package audit

import (
	"context"

	"github.com/daffodil/backend/internal/domain/shared"
)

// Action is the kind of administrative mutation being recorded
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionImport Action = "import"
)

// Entry is an immutable record of an administrative mutation.
// Entries are append-only: never updated, deleted, or pruned.
type Entry struct {
	shared.BaseEntity
	Action   Action `gorm:"type:varchar(20);not null"`
	Entity   string `gorm:"type:varchar(50);not null;index"`
	EntityID string `gorm:"type:varchar(120);not null;index"`
	Data     string `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "audit_entries"
}

// NewEntry creates an audit entry for an admin mutation
func NewEntry(action Action, entity, entityID, data string) *Entry {
	if data == "" {
		data = "{}"
	}
	return &Entry{
		BaseEntity: shared.NewBaseEntity(),
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Data:       data,
	}
}

// Repository defines persistence operations for audit entries.
// There is deliberately no update or delete.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	FindAll(ctx context.Context, filter shared.Filter) ([]Entry, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// Recorder records admin mutations as a side effect. Implementations
// are fire and forget: a failed write must never surface to the caller.
type Recorder interface {
	Record(ctx context.Context, action Action, entity, entityID string, payload any)
}
