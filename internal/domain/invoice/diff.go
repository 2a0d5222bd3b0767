package invoice

import (
	"github.com/samber/lo"
)

// ItemDiff partitions the line items of an edited invoice into the
// backend operations required to reconcile them. The three sets are
// disjoint; there is no ordering dependency between the operations.
type ItemDiff struct {
	// ToCreate holds current items without a persisted ID
	ToCreate []*LineItem
	// ToUpdate holds current items whose ID exists in the persisted set
	ToUpdate []*LineItem
	// ToDelete holds persisted IDs that no current item references
	ToDelete []string
}

// DiffLineItems computes the three-way diff between the previously
// persisted item set and the current in-memory set. The partition is
// computed from the ID sets, never from array position.
func DiffLineItems(persisted, current []*LineItem) ItemDiff {
	persistedIDs := lo.SliceToMap(persisted, func(li *LineItem) (string, struct{}) {
		return li.ID, struct{}{}
	})
	currentIDs := lo.SliceToMap(
		lo.Filter(current, func(li *LineItem, _ int) bool { return li.IsPersisted() }),
		func(li *LineItem) (string, struct{}) { return li.ID, struct{}{} },
	)

	diff := ItemDiff{}
	for _, li := range current {
		if !li.IsPersisted() {
			diff.ToCreate = append(diff.ToCreate, li)
			continue
		}
		if _, ok := persistedIDs[li.ID]; ok {
			diff.ToUpdate = append(diff.ToUpdate, li)
		} else {
			// A persisted ID unknown to the backend set is treated as a
			// create so the surviving local row is not silently dropped.
			diff.ToCreate = append(diff.ToCreate, li)
		}
	}
	for _, li := range persisted {
		if _, ok := currentIDs[li.ID]; !ok {
			diff.ToDelete = append(diff.ToDelete, li.ID)
		}
	}
	return diff
}

// IsEmpty reports whether the edit requires no item operations.
func (d ItemDiff) IsEmpty() bool {
	return len(d.ToCreate) == 0 && len(d.ToUpdate) == 0 && len(d.ToDelete) == 0
}
