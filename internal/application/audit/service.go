package audit

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/daffodil/backend/internal/domain/audit"
	"github.com/daffodil/backend/internal/domain/shared"
)

// Service records and lists audit entries. Recording is best effort: a
// failed write is logged and swallowed so the primary mutation is never
// rolled back or blocked by its trail.
type Service struct {
	repo   audit.Repository
	logger *zap.Logger
}

// NewService creates a new audit Service
func NewService(repo audit.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record appends an audit entry for an admin mutation
func (s *Service) Record(ctx context.Context, action audit.Action, entity, entityID string, payload any) {
	data := "{}"
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			data = string(b)
		} else {
			s.logger.Warn("Audit payload not serializable",
				zap.String("entity", entity),
				zap.String("entity_id", entityID),
				zap.Error(err))
		}
	}

	entry := audit.NewEntry(action, entity, entityID, data)

	// Detach from the request context so a cancelled request does not
	// lose the trail entry.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.repo.Append(writeCtx, entry); err != nil {
		s.logger.Warn("Audit entry dropped",
			zap.String("action", string(action)),
			zap.String("entity", entity),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}

// EntryResponse represents an audit entry in API responses
type EntryResponse struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"`
	Data      string `json:"data"`
	CreatedAt string `json:"created_at"`
}

// ListFilter represents filter options for the audit list
type ListFilter struct {
	Action   string `form:"action" binding:"omitempty,oneof=create update delete import"`
	Entity   string `form:"entity"`
	EntityID string `form:"entity_id"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// List retrieves audit entries, newest first
func (s *Service) List(ctx context.Context, filter ListFilter) ([]EntryResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Filters:  make(map[string]interface{}),
	}
	if domainFilter.Page == 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize == 0 {
		domainFilter.PageSize = 50
	}
	if filter.Action != "" {
		domainFilter.Filters["action"] = filter.Action
	}
	if filter.Entity != "" {
		domainFilter.Filters["entity"] = filter.Entity
	}
	if filter.EntityID != "" {
		domainFilter.Filters["entity_id"] = filter.EntityID
	}

	entries, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = EntryResponse{
			ID:        e.ID.String(),
			Action:    string(e.Action),
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Data:      e.Data,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return responses, total, nil
}

// Ensure Service implements the domain Recorder
var _ audit.Recorder = (*Service)(nil)
