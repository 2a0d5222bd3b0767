package catalog

import (
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// Item is a product or service from the externally managed catalogs.
// For product items the unit cost is authoritative and treated read-only
// once selected on an invoice; for service items it is only a default the
// user may override.
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     types.ItemType  `json:"item_type"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	types.BaseModel
}

func (i *Item) Validate() error {
	if err := i.Type.Validate(); err != nil {
		return err
	}
	if i.Name == "" {
		return ierr.NewError("catalog item validation failed").
			WithHint("name is required").
			Mark(ierr.ErrValidation)
	}
	if i.UnitCost.IsNegative() {
		return ierr.NewError("catalog item validation failed").
			WithHint("unit cost must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
