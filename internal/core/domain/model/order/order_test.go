package order_test

import (
	"math"
	"testing"
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Demo Customer", 25.99)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "Demo Customer", o.CustomerName())
		assert.InDelta(t, 25.99, o.Total(), 0.001)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.Items())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Second)
	})

	t.Run("should accept zero total", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Demo Customer", 0)

		require.NoError(t, err)
		assert.Zero(t, o.Total())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "Demo Customer", 25.99)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID")
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", 25.99)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerName")
	})

	t.Run("should fail with negative total", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Demo Customer", -9.99)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "total is invalid")
		assert.Contains(t, err.Error(), "is negative")
	})

	t.Run("should fail with non-finite total", func(t *testing.T) {
		for _, total := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			o, err := order.NewOrder(validID, "Demo Customer", total)

			require.Error(t, err)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "not a finite number")
		}
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "", -1)

		require.Error(t, err)
		assert.Nil(t, o)
		// Should contain all validation errors joined
		assert.Contains(t, err.Error(), "UUID")
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "total is invalid")
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	createdAt := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

	t.Run("should restore order with items and status", func(t *testing.T) {
		item, err := order.NewItem("tshirt-classic", "Red", "XXL", 1)
		require.NoError(t, err)

		o, err := order.RestoreOrder(validID, "Demo Customer", order.Processing, 25.99, createdAt, []order.Item{item})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "tshirt-classic", o.Items()[0].ProductID())
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, "Demo Customer", order.Unknown, 25.99, createdAt, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject items bypassing the item constructor", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, "Demo Customer", order.Pending, 25.99, createdAt, []order.Item{{}})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should fail on zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail on nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrderAddItem(t *testing.T) {
	t.Run("should add valid item", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Demo Customer", 25.99)
		require.NoError(t, err)

		err = o.AddItem("tshirt-classic", "White", "M", 1)

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "White", o.Items()[0].Color())
		assert.Equal(t, "M", o.Items()[0].Size())
		assert.Equal(t, 1, o.Items()[0].Quantity())
	})

	t.Run("should reject invalid item", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Demo Customer", 25.99)
		require.NoError(t, err)

		err = o.AddItem("", "White", "M", 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productID")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Empty(t, o.Items())
	})

	t.Run("items accessor should return a copy", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Demo Customer", 25.99)
		require.NoError(t, err)
		require.NoError(t, o.AddItem("tshirt-classic", "White", "M", 1))

		items := o.Items()
		items[0] = order.Item{}

		assert.Equal(t, "tshirt-classic", o.Items()[0].ProductID())
	})
}

func TestOrderIsEqual(t *testing.T) {
	id := kernel.NewUUID()

	first, err := order.NewOrder(id, "Demo Customer", 25.99)
	require.NoError(t, err)
	second, err := order.NewOrder(id, "Another Customer", 99.99)
	require.NoError(t, err)
	third, err := order.NewOrder(kernel.NewUUID(), "Demo Customer", 25.99)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}
