package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	items := []Item{{ProductID: "spring-bouquet", Quantity: 2, UnitPrice: decimal.NewFromFloat(19.99)}}

	t.Run("valid order", func(t *testing.T) {
		o, err := NewOrder("DF-1001", "jane@example.com", "Jane Doe", "paid", decimal.NewFromFloat(39.98), items)
		require.NoError(t, err)
		assert.Equal(t, "DF-1001", o.OrderNumber)
		assert.Equal(t, "paid", o.Status)
		assert.Len(t, o.Items, 1)
	})

	t.Run("defaults status to pending", func(t *testing.T) {
		o, err := NewOrder("DF-1002", "", "", "", decimal.Zero, items)
		require.NoError(t, err)
		assert.Equal(t, "pending", o.Status)
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := NewOrder("", "", "", "", decimal.Zero, items)
		assert.Error(t, err)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := NewOrder("DF-1003", "", "", "", decimal.Zero, nil)
		assert.Error(t, err)
	})
}

func TestOrderUpdateStatus(t *testing.T) {
	o, err := NewOrder("DF-1004", "", "", "pending", decimal.Zero, []Item{{ProductID: "x", Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, o.UpdateStatus("shipped", "https://track.example.com/123"))
	assert.Equal(t, "shipped", o.Status)
	assert.Equal(t, "https://track.example.com/123", o.TrackingURL)

	// empty tracking URL leaves the existing one in place
	require.NoError(t, o.UpdateStatus("delivered", ""))
	assert.Equal(t, "https://track.example.com/123", o.TrackingURL)

	assert.Error(t, o.UpdateStatus("", ""))
}

func TestItemsRoundTrip(t *testing.T) {
	items := Items{
		{ProductID: "spring-bouquet", Quantity: 2, UnitPrice: decimal.NewFromFloat(19.99)},
		{ProductID: "rose-box", Quantity: 1, UnitPrice: decimal.NewFromInt(45)},
	}

	v, err := items.Value()
	require.NoError(t, err)

	var got Items
	require.NoError(t, got.Scan(v))
	require.Len(t, got, 2)
	assert.Equal(t, "spring-bouquet", got[0].ProductID)
	assert.True(t, got[0].UnitPrice.Equal(decimal.NewFromFloat(19.99)))
}
