package invoice

import (
	"context"
)

// LineItemRepository defines the interface for line item persistence.
// Item operations are independently retriable and order independent; the
// service layer reports a failed operation per item instead of failing
// the whole edit.
type LineItemRepository interface {
	// Create persists a new line item against an existing invoice header
	// and fills in the assigned ID
	Create(ctx context.Context, item *LineItem) error

	// Update updates a persisted line item
	Update(ctx context.Context, item *LineItem) error

	// Delete removes a persisted line item
	Delete(ctx context.Context, id string) error

	// ListByInvoice retrieves all line items of an invoice
	ListByInvoice(ctx context.Context, invoiceID string) ([]*LineItem, error)
}
