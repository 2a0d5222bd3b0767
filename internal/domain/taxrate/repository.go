package taxrate

import (
	"context"
)

// Repository is the read-only port onto the tax rate catalog.
type Repository interface {
	// Get retrieves a tax rate by ID
	Get(ctx context.Context, id string) (*TaxRate, error)

	// List retrieves all tax rates
	List(ctx context.Context) ([]*TaxRate, error)
}
