package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, quantity int64, unitCost string, taxRate int64) *LineItem {
	t.Helper()
	item := &LineItem{
		ItemType: "product",
		Name:     "item",
		Quantity: quantity,
		UnitCost: decimal.RequireFromString(unitCost),
	}
	require.NoError(t, item.Recalculate(decimal.NewFromInt(taxRate)))
	return item
}

func TestAggregate(t *testing.T) {
	t.Run("empty_invoice", func(t *testing.T) {
		totals, err := Aggregate(nil, decimal.Zero, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.TotalTax.IsZero())
		assert.True(t, totals.TotalDue.IsZero())
		assert.True(t, totals.RoundedTotalDue.IsZero())
		assert.Equal(t, "+0.00", totals.RoundingDeltaDisplay())
	})

	t.Run("items_with_adjustments", func(t *testing.T) {
		items := []*LineItem{newItem(t, 2, "50", 18)}
		totals, err := Aggregate(items,
			decimal.NewFromInt(10), // shipping
			decimal.NewFromInt(5),  // discount
			decimal.Zero)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(totals.Subtotal))
		assert.True(t, decimal.NewFromInt(18).Equal(totals.TotalTax))
		// 100 + 18 + 10 - 5
		assert.True(t, decimal.NewFromInt(123).Equal(totals.TotalDue))
		assert.True(t, decimal.NewFromInt(123).Equal(totals.RoundedTotalDue))
		assert.Equal(t, "+0.00", totals.RoundingDeltaDisplay())
		assert.False(t, totals.IsCreditBalance())
	})

	t.Run("rounding_down_shows_negative_delta", func(t *testing.T) {
		items := []*LineItem{newItem(t, 1, "100.30", 0)}
		totals, err := Aggregate(items, decimal.Zero, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(totals.RoundedTotalDue))
		assert.Equal(t, "-0.30", totals.RoundingDeltaDisplay())
	})

	t.Run("half_rounds_up", func(t *testing.T) {
		items := []*LineItem{newItem(t, 1, "122.50", 0)}
		totals, err := Aggregate(items, decimal.Zero, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(123).Equal(totals.RoundedTotalDue))
		assert.Equal(t, "+0.50", totals.RoundingDeltaDisplay())
	})

	t.Run("credit_balance_half_rounds_toward_zero", func(t *testing.T) {
		// Overpayment drives the total negative; -122.50 rounds to -122.
		totals, err := Aggregate(nil, decimal.Zero, decimal.Zero, decimal.RequireFromString("122.50"))
		require.NoError(t, err)
		assert.True(t, totals.IsCreditBalance())
		assert.True(t, decimal.RequireFromString("-122.50").Equal(totals.TotalDue))
		assert.True(t, decimal.NewFromInt(-122).Equal(totals.RoundedTotalDue))
		assert.Equal(t, "+0.50", totals.RoundingDeltaDisplay())
	})

	t.Run("amount_paid_shifts_total_due_by_its_delta", func(t *testing.T) {
		items := []*LineItem{newItem(t, 2, "50", 18)}
		shipping := decimal.NewFromInt(10)
		discount := decimal.NewFromInt(5)
		delta := decimal.RequireFromString("30.25")

		base, err := Aggregate(items, shipping, discount, decimal.NewFromInt(20))
		require.NoError(t, err)
		paidMore, err := Aggregate(items, shipping, discount, decimal.NewFromInt(20).Add(delta))
		require.NoError(t, err)

		assert.True(t, paidMore.TotalDue.LessThan(base.TotalDue))
		assert.True(t, base.TotalDue.Sub(paidMore.TotalDue).Equal(delta))
		// Everything upstream of the payment is unaffected.
		assert.True(t, base.Subtotal.Equal(paidMore.Subtotal))
		assert.True(t, base.TotalTax.Equal(paidMore.TotalTax))
	})

	t.Run("negative_adjustments_rejected", func(t *testing.T) {
		_, err := Aggregate(nil, decimal.NewFromInt(-1), decimal.Zero, decimal.Zero)
		assert.Error(t, err)
		_, err = Aggregate(nil, decimal.Zero, decimal.NewFromInt(-1), decimal.Zero)
		assert.Error(t, err)
		_, err = Aggregate(nil, decimal.Zero, decimal.Zero, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("idempotent", func(t *testing.T) {
		items := []*LineItem{newItem(t, 3, "19.99", 18), newItem(t, 1, "5.25", 18)}
		first, err := Aggregate(items, decimal.NewFromInt(7), decimal.NewFromInt(2), decimal.NewFromInt(10))
		require.NoError(t, err)
		second, err := Aggregate(items, decimal.NewFromInt(7), decimal.NewFromInt(2), decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.True(t, first.TotalDue.Equal(second.TotalDue))
		assert.True(t, first.Subtotal.Equal(second.Subtotal))
		assert.True(t, first.TotalTax.Equal(second.TotalTax))
	})
}

func TestInvoiceRecalculate(t *testing.T) {
	rate := decimal.NewFromInt(18)
	inv := &Invoice{
		TaxOption: "yes",
		TaxRate:   &rate,
		LineItems: []*LineItem{
			{ItemType: "product", Name: "Widget", Quantity: 2, UnitCost: decimal.NewFromInt(50)},
		},
		Shipping:   decimal.NewFromInt(10),
		Discount:   decimal.NewFromInt(5),
		AmountPaid: decimal.Zero,
	}

	require.NoError(t, inv.Recalculate())
	assert.True(t, decimal.NewFromInt(100).Equal(inv.Subtotal))
	assert.True(t, decimal.NewFromInt(18).Equal(inv.TotalTax))
	assert.True(t, decimal.NewFromInt(123).Equal(inv.TotalDue))

	// Disabling the tax option zeroes the effective rate everywhere.
	inv.TaxOption = "no"
	require.NoError(t, inv.Recalculate())
	assert.True(t, inv.TotalTax.IsZero())
	assert.True(t, decimal.NewFromInt(105).Equal(inv.TotalDue))

	// Running it again changes nothing.
	before := inv.TotalDue
	require.NoError(t, inv.Recalculate())
	assert.True(t, before.Equal(inv.TotalDue))
}
