package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// Totals holds the aggregated money fields of a whole invoice.
// RoundingDelta is display-only and is never fed back into TotalDue.
type Totals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	TotalTax        decimal.Decimal `json:"gst"`
	TotalDue        decimal.Decimal `json:"total_due"`
	RoundedTotalDue decimal.Decimal `json:"rounded_total_due"`
	RoundingDelta   decimal.Decimal `json:"rounding_delta"`
}

// Aggregate recomputes all invoice totals from the current line items and
// adjustment fields. It is pure and idempotent; callers re-run it on every
// change instead of patching totals incrementally.
//
// TotalDue may be negative when discount or amount paid exceed the item
// totals; that is a credit balance, not an error.
func Aggregate(items []*LineItem, shipping, discount, amountPaid decimal.Decimal) (*Totals, error) {
	if shipping.IsNegative() {
		return nil, NewInvalidAmountError("shipping", shipping)
	}
	if discount.IsNegative() {
		return nil, NewInvalidAmountError("discount", discount)
	}
	if amountPaid.IsNegative() {
		return nil, NewInvalidAmountError("amount_paid", amountPaid)
	}

	subtotal := decimal.Zero
	totalTax := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.BaseAmount())
		totalTax = totalTax.Add(item.TaxAmount)
	}
	subtotal = round2(subtotal)
	totalTax = round2(totalTax)

	totalDue := round2(subtotal.Add(totalTax).Add(shipping).Sub(discount).Sub(amountPaid))
	roundedTotalDue := roundHalfUp(totalDue)

	return &Totals{
		Subtotal:        subtotal,
		TotalTax:        totalTax,
		TotalDue:        totalDue,
		RoundedTotalDue: roundedTotalDue,
		RoundingDelta:   roundedTotalDue.Sub(totalDue),
	}, nil
}

// roundHalfUp rounds to the nearest integer with ties going toward
// positive infinity, so a credit balance of -122.50 rounds to -122.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// RoundingDeltaDisplay renders the delta with an explicit sign for the
// printed document, e.g. "+0.40" or "-0.30".
func (t *Totals) RoundingDeltaDisplay() string {
	if t.RoundingDelta.IsNegative() {
		return t.RoundingDelta.StringFixed(2)
	}
	return fmt.Sprintf("+%s", t.RoundingDelta.StringFixed(2))
}

// IsCreditBalance reports whether the invoice is overpaid or
// over-discounted.
func (t *Totals) IsCreditBalance() bool {
	return t.TotalDue.IsNegative()
}
