package catalog

import (
	"context"

	"github.com/billcraft/billcraft/internal/types"
)

// Repository is the read-only port onto the product and service catalogs.
type Repository interface {
	// GetByName resolves an item by name within one catalog
	GetByName(ctx context.Context, itemType types.ItemType, name string) (*Item, error)

	// List retrieves all items of one catalog
	List(ctx context.Context, itemType types.ItemType) ([]*Item, error)
}
