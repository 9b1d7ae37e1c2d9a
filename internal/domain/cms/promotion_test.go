package cms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotionVisibilityWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	p, err := NewPromotion("Summer Sale", "", "", "", start, end, 0)
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		visible bool
	}{
		{"before window", start.Add(-time.Second), false},
		{"at start", start, true},
		{"inside window", start.AddDate(0, 0, 10), true},
		{"at end", end, true},
		{"after window", end.Add(time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, p.IsVisibleAt(tt.now))
		})
	}

	t.Run("inactive hides regardless of window", func(t *testing.T) {
		p.SetActive(false)
		assert.False(t, p.IsVisibleAt(start.AddDate(0, 0, 10)))
	})
}

func TestNewPromotionRejectsInvertedWindow(t *testing.T) {
	start := time.Now()
	_, err := NewPromotion("Sale", "", "", "", start, start.Add(-time.Hour), 0)
	assert.Error(t, err)
}

func TestNewPageDerivesSlug(t *testing.T) {
	p, err := NewPage("", "About Our Shop!", "body")
	require.NoError(t, err)
	assert.Equal(t, "about-our-shop", p.Slug)
	assert.True(t, p.IsActive)

	p2, err := NewPage("Custom Slug", "Title", "")
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", p2.Slug)

	_, err = NewPage("", "", "body")
	assert.Error(t, err)
}
