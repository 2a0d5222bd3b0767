package invoice

import (
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem represents a single line item in an invoice.
// An empty ID means the row was added locally and has not been persisted
// yet; a non-empty ID is the persisted identifier used by the edit diff.
type LineItem struct {
	ID        string          `json:"id,omitempty"`
	InvoiceID string          `json:"invoice_id"`
	ItemType  types.ItemType  `json:"item_type"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TaxAmount decimal.Decimal `json:"total_gst"`
	Total     decimal.Decimal `json:"total"`
	types.BaseModel
}

// IsPersisted reports whether the item exists in the backing store.
func (li *LineItem) IsPersisted() bool {
	return li.ID != ""
}

// BaseAmount is the pre-tax amount of the row.
func (li *LineItem) BaseAmount() decimal.Decimal {
	return decimal.NewFromInt(li.Quantity).Mul(li.UnitCost)
}

// Recalculate derives the tax amount and row total from the given tax rate.
func (li *LineItem) Recalculate(taxRatePercent decimal.Decimal) error {
	amounts, err := ComputeLineItem(li.Quantity, li.UnitCost, taxRatePercent)
	if err != nil {
		return err
	}
	li.TaxAmount = amounts.TaxAmount
	li.Total = amounts.LineTotal
	return nil
}

// Validate validates the invoice line item
func (li *LineItem) Validate() error {
	if err := li.ItemType.Validate(); err != nil {
		return err
	}

	if li.Name == "" {
		return ierr.NewError("invoice line item validation failed").
			WithHint("item name is required").
			Mark(ierr.ErrValidation)
	}

	if li.Quantity < 1 {
		return NewInvalidQuantityError(li.Quantity)
	}

	if li.UnitCost.IsNegative() {
		return NewInvalidAmountError("unit_cost", li.UnitCost)
	}

	if li.TaxAmount.IsNegative() {
		return NewInvalidAmountError("total_gst", li.TaxAmount)
	}

	if li.Total.IsNegative() {
		return NewInvalidAmountError("total", li.Total)
	}

	return nil
}
