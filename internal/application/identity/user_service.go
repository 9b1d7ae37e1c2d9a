package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daffodil/backend/internal/domain/audit"
	"github.com/daffodil/backend/internal/domain/identity"
	"github.com/daffodil/backend/internal/domain/shared"
)

// SetAdminRequest toggles the admin flag on a user
type SetAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}

// SetSuspendedRequest toggles the suspension flag on a user
type SetSuspendedRequest struct {
	Suspended bool `json:"suspended"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	Suspended bool      `json:"suspended"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListFilter represents filter options for the admin user list
type UserListFilter struct {
	Search    string `form:"search"`
	Suspended *bool  `form:"suspended"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		IsAdmin:   u.IsAdmin,
		Suspended: u.Suspended,
		CreatedAt: u.CreatedAt,
	}
}

// UserService handles user moderation. Accounts are created by the
// hosted identity provider; locally only the moderation flags change.
type UserService struct {
	userRepo identity.UserRepository
	mirror   identity.ProviderMirror
	recorder audit.Recorder
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, mirror identity.ProviderMirror, recorder audit.Recorder, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		mirror:   mirror,
		recorder: recorder,
		logger:   logger,
	}
}

// EnsureUser upserts the local row for an identity-provider account on
// first sight of its email.
func (s *UserService) EnsureUser(ctx context.Context, email, name string) (*UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return ToUserResponse(existing), nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(email, name)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID retrieves a user
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List retrieves users for the back office
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Filters:  make(map[string]interface{}),
	}
	if domainFilter.Page == 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize == 0 {
		domainFilter.PageSize = 20
	}
	if filter.Suspended != nil {
		domainFilter.Filters["suspended"] = *filter.Suspended
	}

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *ToUserResponse(&users[i])
	}
	return responses, total, nil
}

// SetAdmin toggles the admin flag
func (s *UserService) SetAdmin(ctx context.Context, id uuid.UUID, req SetAdminRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.SetAdmin(req.IsAdmin)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "user", user.ID.String(), req)

	return ToUserResponse(user), nil
}

// SetSuspended toggles the suspension flag locally and mirrors it to
// the identity provider's banned state. The mirror call is best effort:
// a failure is logged and swallowed, so the local flag can diverge from
// the provider. Known consistency gap.
func (s *UserService) SetSuspended(ctx context.Context, id uuid.UUID, req SetSuspendedRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.SetSuspended(req.Suspended)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mirror.SetBanned(ctx, user.ID, req.Suspended); err != nil {
		s.logger.Warn("Identity provider ban state not mirrored",
			zap.String("user_id", user.ID.String()),
			zap.Bool("banned", req.Suspended),
			zap.Error(err))
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "user", user.ID.String(), req)

	return ToUserResponse(user), nil
}
