package branch

import (
	"context"
)

// Repository is the port onto the branch directory. Besides lookups it
// issues final invoice numbers, which is the only write the invoice core
// ever performs against branch state.
type Repository interface {
	Get(ctx context.Context, id string) (*Branch, error)
	List(ctx context.Context) ([]*Branch, error)

	// NextFinalInvoiceNumber atomically advances the branch sequence and
	// returns the formatted final invoice number
	NextFinalInvoiceNumber(ctx context.Context, branchID string) (string, error)
}
