package taxrate

import (
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// TaxRate is a named percentage rate from the externally managed catalog.
type TaxRate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	types.BaseModel
}

func (t *TaxRate) Validate() error {
	if t.Name == "" {
		return ierr.NewError("tax rate validation failed").
			WithHint("name is required").
			Mark(ierr.ErrValidation)
	}
	if t.Percentage.IsNegative() {
		return ierr.NewError("tax rate validation failed").
			WithHint("percentage must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
