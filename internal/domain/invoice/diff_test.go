package invoice

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func persistedItem(id string) *LineItem {
	return &LineItem{
		ID:       id,
		ItemType: "product",
		Name:     "item-" + id,
		Quantity: 1,
		UnitCost: decimal.NewFromInt(10),
	}
}

func TestDiffLineItems(t *testing.T) {
	t.Run("partition_by_id_sets", func(t *testing.T) {
		persisted := []*LineItem{persistedItem("a"), persistedItem("b"), persistedItem("c")}
		current := []*LineItem{
			persistedItem("a"), // survives, goes to update
			{ItemType: "product", Name: "fresh", Quantity: 1, UnitCost: decimal.NewFromInt(5)}, // no ID
			persistedItem("x"), // ID unknown to the persisted set
		}

		diff := DiffLineItems(persisted, current)

		assert.Len(t, diff.ToUpdate, 1)
		assert.Equal(t, "a", diff.ToUpdate[0].ID)

		assert.Len(t, diff.ToCreate, 2)
		names := lo.Map(diff.ToCreate, func(li *LineItem, _ int) string { return li.Name })
		assert.Contains(t, names, "fresh")
		assert.Contains(t, names, "item-x")

		assert.ElementsMatch(t, []string{"b", "c"}, diff.ToDelete)
	})

	t.Run("identical_sets_update_only", func(t *testing.T) {
		persisted := []*LineItem{persistedItem("a"), persistedItem("b")}
		current := []*LineItem{persistedItem("b"), persistedItem("a")}

		// Order must not matter; the diff works on ID sets.
		diff := DiffLineItems(persisted, current)
		assert.Empty(t, diff.ToCreate)
		assert.Empty(t, diff.ToDelete)
		assert.Len(t, diff.ToUpdate, 2)
	})

	t.Run("empty_current_deletes_all", func(t *testing.T) {
		persisted := []*LineItem{persistedItem("a"), persistedItem("b")}
		diff := DiffLineItems(persisted, nil)
		assert.Empty(t, diff.ToCreate)
		assert.Empty(t, diff.ToUpdate)
		assert.ElementsMatch(t, []string{"a", "b"}, diff.ToDelete)
		assert.False(t, diff.IsEmpty())
	})

	t.Run("both_empty", func(t *testing.T) {
		diff := DiffLineItems(nil, nil)
		assert.True(t, diff.IsEmpty())
	})
}
