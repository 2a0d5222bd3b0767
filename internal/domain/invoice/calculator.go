package invoice

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Amounts holds the derived money fields of a single line item.
type Amounts struct {
	TaxAmount decimal.Decimal
	LineTotal decimal.Decimal
}

// ComputeLineItem derives the tax amount and total for one invoice row.
// Each derived field is rounded to 2 decimal places once, at derivation
// time; sums over these fields are not re-rounded elsewhere.
func ComputeLineItem(quantity int64, unitCost, taxRatePercent decimal.Decimal) (Amounts, error) {
	if quantity < 1 {
		return Amounts{}, NewInvalidQuantityError(quantity)
	}
	if unitCost.IsNegative() {
		return Amounts{}, NewInvalidAmountError("unit_cost", unitCost)
	}
	if taxRatePercent.IsNegative() {
		return Amounts{}, NewInvalidAmountError("tax_rate", taxRatePercent)
	}

	baseAmount := decimal.NewFromInt(quantity).Mul(unitCost)
	taxAmount := round2(baseAmount.Mul(taxRatePercent).Div(hundred))
	lineTotal := round2(baseAmount.Add(taxAmount))

	return Amounts{
		TaxAmount: taxAmount,
		LineTotal: lineTotal,
	}, nil
}

// round2 rounds half away from zero to 2 decimal places, which is
// round-half-up on the non-negative amounts it is applied to.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
