package invoice

import (
	"time"

	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. The derived fields
// (Subtotal, TotalTax, TotalDue and the per-item amounts) are never
// mutated directly; Recalculate rederives all of them from the current
// line items and adjustment fields.
type Invoice struct {
	ID                 string                      `json:"id"`
	InvoiceNumber      string                      `json:"invoice_number"`
	FinalInvoiceNumber *string                     `json:"final_invoice_number,omitempty"`
	InvoiceType        types.InvoiceType           `json:"invoice_type"`
	LifecycleState     types.InvoiceLifecycleState `json:"lifecycle_state"`
	ClientID           string                      `json:"client"`
	BranchID           string                      `json:"branch_address"`
	BankAccountID      string                      `json:"bank_account"`
	InvoiceDate        time.Time                   `json:"invoice_date"`
	DueDate            time.Time                   `json:"due_date"`
	Currency           string                      `json:"currency_type"`
	PaymentTerms       types.PaymentTerm           `json:"payment_terms"`
	TaxOption          types.TaxOption             `json:"tax_option"`
	TaxName            string                      `json:"tax_name,omitempty"`
	TaxRate            *decimal.Decimal            `json:"tax_rate,omitempty"`
	Discount           decimal.Decimal             `json:"discount"`
	Shipping           decimal.Decimal             `json:"shipping"`
	AmountPaid         decimal.Decimal             `json:"amount_paid"`
	Subtotal           decimal.Decimal             `json:"subtotal"`
	TotalTax           decimal.Decimal             `json:"gst"`
	TotalDue           decimal.Decimal             `json:"total_due"`
	LineItems          []*LineItem                 `json:"items,omitempty"`
	types.BaseModel
}

// EffectiveTaxRate returns the applicable tax rate percentage, which is
// zero unless the tax option is enabled and a rate has been chosen.
func (i *Invoice) EffectiveTaxRate() decimal.Decimal {
	if i.TaxOption != types.TaxOptionYes || i.TaxRate == nil {
		return decimal.Zero
	}
	return *i.TaxRate
}

// Recalculate rederives every line item's amounts under the invoice's
// effective tax rate and then reaggregates the invoice totals. It must be
// called after any change to items, adjustments, or the active tax rate.
func (i *Invoice) Recalculate() error {
	rate := i.EffectiveTaxRate()
	for _, item := range i.LineItems {
		if err := item.Recalculate(rate); err != nil {
			return err
		}
	}

	totals, err := Aggregate(i.LineItems, i.Shipping, i.Discount, i.AmountPaid)
	if err != nil {
		return err
	}
	i.Subtotal = totals.Subtotal
	i.TotalTax = totals.TotalTax
	i.TotalDue = totals.TotalDue
	return nil
}

// Totals aggregates the current state without mutating the invoice.
func (i *Invoice) Totals() (*Totals, error) {
	return Aggregate(i.LineItems, i.Shipping, i.Discount, i.AmountPaid)
}

// ChangeType switches the invoice between the product and service
// catalogs. The change is rejected while line items of the old type
// remain; purging them silently would destroy user input.
func (i *Invoice) ChangeType(newType types.InvoiceType) error {
	if err := newType.Validate(); err != nil {
		return err
	}
	for _, item := range i.LineItems {
		if !item.ItemType.Matches(newType) {
			return NewMismatchedItemTypeError(newType.String(), item.ItemType.String(), item.Name)
		}
	}
	i.InvoiceType = newType
	return nil
}

func (i *Invoice) Validate() error {
	if err := i.InvoiceType.Validate(); err != nil {
		return err
	}
	if err := i.LifecycleState.Validate(); err != nil {
		return err
	}

	if i.ClientID == "" {
		return NewValidationError("client", "is required")
	}
	if i.BranchID == "" {
		return NewValidationError("branch_address", "is required")
	}
	if i.BankAccountID == "" {
		return NewValidationError("bank_account", "is required")
	}

	if i.InvoiceDate.IsZero() {
		return NewValidationError("invoice_date", "is required")
	}
	if i.DueDate.IsZero() {
		return NewValidationError("due_date", "is required")
	}
	if i.DueDate.Before(i.InvoiceDate) {
		return NewValidationError("due_date", "must be on or after invoice_date")
	}

	if err := types.ValidateCurrency(i.Currency); err != nil {
		return err
	}
	if err := i.PaymentTerms.Validate(); err != nil {
		return err
	}
	if err := i.TaxOption.Validate(); err != nil {
		return err
	}

	if i.TaxOption == types.TaxOptionYes {
		if i.TaxRate == nil {
			return NewValidationError("tax_rate", "must be set when tax option is yes")
		}
		if i.TaxRate.IsNegative() {
			return NewInvalidAmountError("tax_rate", *i.TaxRate)
		}
	}

	if i.Discount.IsNegative() {
		return NewInvalidAmountError("discount", i.Discount)
	}
	if i.Shipping.IsNegative() {
		return NewInvalidAmountError("shipping", i.Shipping)
	}
	if i.AmountPaid.IsNegative() {
		return NewInvalidAmountError("amount_paid", i.AmountPaid)
	}

	for _, item := range i.LineItems {
		if !item.ItemType.Matches(i.InvoiceType) {
			return NewMismatchedItemTypeError(i.InvoiceType.String(), item.ItemType.String(), item.Name)
		}
		if err := item.Validate(); err != nil {
			return err
		}
	}

	// derived totals must agree with a fresh aggregation
	totals, err := i.Totals()
	if err != nil {
		return err
	}
	if !i.Subtotal.Equal(totals.Subtotal) {
		return NewValidationError("subtotal", "must equal the aggregated item subtotal")
	}
	if !i.TotalTax.Equal(totals.TotalTax) {
		return NewValidationError("gst", "must equal the aggregated item tax")
	}
	if !i.TotalDue.Equal(totals.TotalDue) {
		return NewValidationError("total_due", "must equal subtotal + gst + shipping - discount - amount_paid")
	}

	return nil
}
