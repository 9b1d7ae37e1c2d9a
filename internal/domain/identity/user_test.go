package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		u, err := NewUser("  Jane@Example.COM ", "Jane")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", u.Email)
		assert.False(t, u.IsAdmin)
		assert.False(t, u.Suspended)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "")
		assert.Error(t, err)
	})
}

func TestUserModerationFlags(t *testing.T) {
	u, err := NewUser("jane@example.com", "Jane")
	require.NoError(t, err)

	u.SetAdmin(true)
	assert.True(t, u.CanAccessAdmin())

	u.SetSuspended(true)
	assert.True(t, u.Suspended)
	assert.False(t, u.CanAccessAdmin())

	u.SetSuspended(false)
	assert.True(t, u.CanAccessAdmin())
}
