package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/daffodil/backend/internal/domain/audit"
	"github.com/daffodil/backend/internal/domain/identity"
	"github.com/daffodil/backend/internal/domain/shared"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProviderMirror is a mock implementation of identity.ProviderMirror
type MockProviderMirror struct {
	mock.Mock
}

func (m *MockProviderMirror) SetBanned(ctx context.Context, userID uuid.UUID, banned bool) error {
	args := m.Called(ctx, userID, banned)
	return args.Error(0)
}

// MockRecorder is a mock implementation of audit.Recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, action audit.Action, entity, entityID string, payload any) {
	m.Called(ctx, action, entity, entityID, payload)
}

func newUserService() (*UserService, *MockUserRepository, *MockProviderMirror, *MockRecorder) {
	repo := new(MockUserRepository)
	mirror := new(MockProviderMirror)
	recorder := new(MockRecorder)
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return NewUserService(repo, mirror, recorder, zap.NewNop()), repo, mirror, recorder
}

func mustUser(t *testing.T, email, name string) *identity.User {
	t.Helper()
	u, err := identity.NewUser(email, name)
	require.NoError(t, err)
	return u
}

func TestUserService_EnsureUser(t *testing.T) {
	t.Run("returns existing user without saving", func(t *testing.T) {
		svc, repo, _, _ := newUserService()

		existing := mustUser(t, "jane@example.com", "Jane")
		repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

		resp, err := svc.EnsureUser(context.Background(), "jane@example.com", "Jane")
		require.NoError(t, err)
		assert.Equal(t, existing.ID.String(), resp.ID)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("creates the user on first sight", func(t *testing.T) {
		svc, repo, _, _ := newUserService()

		repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := svc.EnsureUser(context.Background(), "Jane@Example.com", "Jane")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", resp.Email)
		repo.AssertExpectations(t)
	})
}

func TestUserService_SetSuspended(t *testing.T) {
	t.Run("persists suspension and mirrors the ban", func(t *testing.T) {
		svc, repo, mirror, recorder := newUserService()

		user := mustUser(t, "jane@example.com", "Jane")
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)
		mirror.On("SetBanned", mock.Anything, user.ID, true).Return(nil)

		resp, err := svc.SetSuspended(context.Background(), user.ID, SetSuspendedRequest{Suspended: true})

		require.NoError(t, err)
		assert.True(t, resp.Suspended)
		mirror.AssertExpectations(t)
		recorder.AssertCalled(t, "Record", mock.Anything, audit.ActionUpdate, "user", user.ID.String(), mock.Anything)
	})

	t.Run("suspension sticks when the mirror call fails", func(t *testing.T) {
		svc, repo, mirror, _ := newUserService()

		user := mustUser(t, "jane@example.com", "Jane")
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)
		mirror.On("SetBanned", mock.Anything, user.ID, true).Return(errors.New("provider unreachable"))

		resp, err := svc.SetSuspended(context.Background(), user.ID, SetSuspendedRequest{Suspended: true})

		require.NoError(t, err)
		assert.True(t, resp.Suspended)
		assert.True(t, user.Suspended)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, repo, _, _ := newUserService()

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.SetSuspended(context.Background(), id, SetSuspendedRequest{Suspended: true})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestUserService_SetAdmin(t *testing.T) {
	t.Run("does not touch the provider mirror", func(t *testing.T) {
		svc, repo, mirror, _ := newUserService()

		user := mustUser(t, "jane@example.com", "Jane")
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		resp, err := svc.SetAdmin(context.Background(), user.ID, SetAdminRequest{IsAdmin: true})

		require.NoError(t, err)
		assert.True(t, resp.IsAdmin)
		mirror.AssertNotCalled(t, "SetBanned", mock.Anything, mock.Anything, mock.Anything)
	})
}
