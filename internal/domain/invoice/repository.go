package invoice

import (
	"context"

	"github.com/billcraft/billcraft/internal/types"
)

// Repository defines the interface for invoice header persistence.
// Implementations speak to the upstream invoicing API; the domain never
// issues HTTP itself.
type Repository interface {
	// Create creates a new invoice header
	Create(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID, including its line items
	Get(ctx context.Context, id string) (*Invoice, error)

	// Update updates an existing invoice header
	Update(ctx context.Context, invoice *Invoice) error

	// Delete removes an invoice and its items
	Delete(ctx context.Context, id string) error

	// List retrieves invoices based on filter criteria
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)

	// Count returns the total count of invoices based on filter criteria
	Count(ctx context.Context, filter *types.InvoiceFilter) (int, error)
}
