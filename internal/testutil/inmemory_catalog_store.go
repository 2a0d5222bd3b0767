package testutil

import (
	"context"
	"sort"

	"github.com/billcraft/billcraft/internal/domain/catalog"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// InMemoryCatalogStore implements catalog.Repository. ListErr simulates
// an unreachable upstream catalog so tests can verify that item
// additions are refused instead of priced by guesswork.
type InMemoryCatalogStore struct {
	*InMemoryStore[*catalog.Item]

	ListErr error
}

func NewInMemoryCatalogStore() *InMemoryCatalogStore {
	return &InMemoryCatalogStore{
		InMemoryStore: NewInMemoryStore[*catalog.Item](),
	}
}

// AddItem seeds a catalog entry.
func (s *InMemoryCatalogStore) AddItem(ctx context.Context, item *catalog.Item) error {
	if item.ID == "" {
		item.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CATALOG_ITEM)
	}
	return s.InMemoryStore.Create(ctx, item.ID, item)
}

func (s *InMemoryCatalogStore) List(ctx context.Context, itemType types.ItemType) ([]*catalog.Item, error) {
	if s.ListErr != nil {
		return nil, ierr.WithError(s.ListErr).
			WithHintf("The %s catalog is unavailable", itemType).
			Mark(ierr.ErrExternalLookup)
	}

	items, err := s.InMemoryStore.List(ctx, nil, func(_ context.Context, item *catalog.Item, _ interface{}) bool {
		return item.Type == itemType
	}, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *InMemoryCatalogStore) GetByName(ctx context.Context, itemType types.ItemType, name string) (*catalog.Item, error) {
	items, err := s.List(ctx, itemType)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, ierr.NewError("catalog item not found").
		WithHintf("No %s named %q exists in the catalog", itemType, name).
		Mark(ierr.ErrNotFound)
}
