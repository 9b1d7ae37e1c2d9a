package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Spring Bouquet", "spring-bouquet"},
		{"trailing punctuation", "Spring Bouquet!!", "spring-bouquet"},
		{"leading punctuation", "  --Rose Box", "rose-box"},
		{"collapses runs", "Red   &   White Tulips", "red-white-tulips"},
		{"mixed case and digits", "12 Roses Deluxe", "12-roses-deluxe"},
		{"only punctuation", "!!!", ""},
		{"unicode stripped", "Fleur Délice", "fleur-d-lice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("derives id from title", func(t *testing.T) {
		p, err := NewProduct("", "Spring Bouquet!!", "fresh", decimal.NewFromFloat(19.99), CategoryFloral, 10, nil)
		require.NoError(t, err)
		assert.Equal(t, "spring-bouquet", p.ID)
		assert.Equal(t, ProductStatusActive, p.Status)
	})

	t.Run("keeps supplied id after slug normalization", func(t *testing.T) {
		p, err := NewProduct("My Custom ID", "Title", "", decimal.Zero, CategoryGifts, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, "my-custom-id", p.ID)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewProduct("", "", "", decimal.Zero, CategoryFloral, 0, nil)
		assert.Error(t, err)
	})

	t.Run("rejects title with no slug content", func(t *testing.T) {
		_, err := NewProduct("", "!!!", "", decimal.Zero, CategoryFloral, 0, nil)
		assert.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewProduct("", "Roses", "", decimal.Zero, Category("toys"), 0, nil)
		assert.Error(t, err)
	})

	t.Run("clamps negative price and stock", func(t *testing.T) {
		p, err := NewProduct("", "Roses", "", decimal.NewFromInt(-5), CategoryFloral, -3, nil)
		require.NoError(t, err)
		assert.True(t, p.Price.IsZero())
		assert.Equal(t, 0, p.Stock)
	})
}

func TestProductSetters(t *testing.T) {
	p, err := NewProduct("", "Roses", "", decimal.NewFromInt(10), CategoryFloral, 5, nil)
	require.NoError(t, err)

	p.SetPrice(decimal.NewFromFloat(-0.01))
	assert.True(t, p.Price.IsZero())

	p.SetStock(-1)
	assert.Equal(t, 0, p.Stock)

	require.NoError(t, p.SetStatus(ProductStatusInactive))
	assert.False(t, p.IsActive())
	assert.Error(t, p.SetStatus(ProductStatus("discontinued")))

	require.NoError(t, p.SetCategory(CategorySeasonal))
	assert.Error(t, p.SetCategory(Category("")))
}

func TestImageListRoundTrip(t *testing.T) {
	l := ImageList{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}
	v, err := l.Value()
	require.NoError(t, err)

	var got ImageList
	require.NoError(t, got.Scan(v))
	assert.Equal(t, l, got)

	var empty ImageList
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
