//go:build unit

package order_test

import (
	"testing"
	"time"

	"coffee-order-api/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGroup(t *testing.T) *order.Group {
	t.Helper()
	number, err := order.NewNumber(time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	return order.NewGroup(number, time.Now())
}

func TestGroup(t *testing.T) {
	t.Run("new group starts with zero total", func(t *testing.T) {
		group := newTestGroup(t)

		assert.NotEqual(t, uuid.Nil, group.ID())
		assert.Equal(t, "2025-03-090000", group.Number().String())
		assert.True(t, group.TotalPrice().IsZero())
	})

	t.Run("finalize sets the total once", func(t *testing.T) {
		group := newTestGroup(t)

		require.NoError(t, group.Finalize(decimal.RequireFromString("12.30")))
		assert.True(t, decimal.RequireFromString("12.30").Equal(group.TotalPrice()))

		err := group.Finalize(decimal.NewFromInt(99))
		assert.ErrorIs(t, err, order.ErrTotalAlreadySet)
		assert.True(t, decimal.RequireFromString("12.30").Equal(group.TotalPrice()))
	})

	t.Run("finalize rejects negative totals", func(t *testing.T) {
		group := newTestGroup(t)
		assert.ErrorIs(t, group.Finalize(decimal.NewFromInt(-1)), order.ErrNegativeLinePrice)
	})

	t.Run("reconstructed group is already finalized", func(t *testing.T) {
		group := order.ReconstructGroup(uuid.New(), "2025-03-090001", decimal.NewFromInt(5), time.Now())
		assert.ErrorIs(t, group.Finalize(decimal.NewFromInt(6)), order.ErrTotalAlreadySet)
	})
}

func TestLine(t *testing.T) {
	groupID := uuid.New()
	itemID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		line, err := order.NewLine(groupID, itemID, 3, decimal.RequireFromString("13.50"))
		require.NoError(t, err)
		require.NotNil(t, line)

		assert.Equal(t, groupID, line.GroupID())
		assert.Equal(t, itemID, line.ItemID())
		assert.Equal(t, int64(3), line.Quantity())
		assert.True(t, decimal.RequireFromString("13.50").Equal(line.Price()))
	})

	t.Run("zero quantity produces a zero-price line", func(t *testing.T) {
		line, err := order.NewLine(groupID, itemID, 0, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, line.Price().IsZero())
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		_, err := order.NewLine(groupID, itemID, -1, decimal.Zero)
		assert.ErrorIs(t, err, order.ErrNegativeQuantity)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := order.NewLine(groupID, itemID, 1, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, order.ErrNegativeLinePrice)
	})
}
