package invoice

import (
	"context"
)

// NumberingRepository issues sequential proforma invoice numbers of the
// form INV-00001. When the sequence is unavailable the service falls back
// to a locally generated INV-<timestamp> number.
type NumberingRepository interface {
	NextProformaNumber(ctx context.Context) (string, error)
}
