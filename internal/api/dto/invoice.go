package dto

import (
	"time"

	"github.com/billcraft/billcraft/internal/domain/invoice"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/numwords"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// LineItemRequest is one row of a create or update invoice request.
// UnitCost is required for service items and ignored for product items,
// whose cost is resolved from the catalog and treated read-only.
type LineItemRequest struct {
	ID       string           `json:"id,omitempty"`
	ItemType types.ItemType   `json:"item_type" validate:"required"`
	Name     string           `json:"name" validate:"required"`
	Quantity int64            `json:"quantity" validate:"required,min=1"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber string            `json:"invoice_number,omitempty"`
	InvoiceType   types.InvoiceType `json:"invoice_type" validate:"required"`
	ClientID      string            `json:"client" validate:"required"`
	BranchID      string            `json:"branch_address" validate:"required"`
	BankAccountID string            `json:"bank_account" validate:"required"`
	InvoiceDate   string            `json:"invoice_date" validate:"required"`
	DueDate       string            `json:"due_date" validate:"required"`
	Currency      string            `json:"currency_type" validate:"required"`
	PaymentTerms  types.PaymentTerm `json:"payment_terms" validate:"required"`
	TaxOption     types.TaxOption   `json:"tax_option" validate:"required"`
	TaxRateID     string            `json:"tax_rate_id,omitempty"`
	Discount      decimal.Decimal   `json:"discount"`
	Shipping      decimal.Decimal   `json:"shipping"`
	AmountPaid    decimal.Decimal   `json:"amount_paid"`
	Items         []LineItemRequest `json:"items" validate:"omitempty,dive"`
}

// UpdateInvoiceRequest carries the full desired state of a proforma
// invoice; the service diffs its items against the persisted set.
type UpdateInvoiceRequest = CreateInvoiceRequest

// ParseDates validates and parses the calendar date fields.
func (r *CreateInvoiceRequest) ParseDates() (invoiceDate, dueDate time.Time, err error) {
	invoiceDate, err = time.Parse(dateLayout, r.InvoiceDate)
	if err != nil {
		return time.Time{}, time.Time{}, ierr.WithError(err).
			WithHint("invoice_date must be formatted YYYY-MM-DD").
			Mark(ierr.ErrValidation)
	}
	dueDate, err = time.Parse(dateLayout, r.DueDate)
	if err != nil {
		return time.Time{}, time.Time{}, ierr.WithError(err).
			WithHint("due_date must be formatted YYYY-MM-DD").
			Mark(ierr.ErrValidation)
	}
	return invoiceDate, dueDate, nil
}

// PrintResolveRequest resolves a pending print flow. Confirmed moves the
// invoice to final-saved; cancelled routes it back to proforma.
type PrintResolveRequest struct {
	Confirmed *bool `json:"confirmed" validate:"required"`
}

// LineItemResponse mirrors one persisted invoice row.
type LineItemResponse struct {
	ID       string          `json:"id"`
	ItemType types.ItemType  `json:"item_type"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Total    decimal.Decimal `json:"total"`
	TotalGst decimal.Decimal `json:"total_gst"`
}

// InvoiceResponse is the full read model of an invoice, including the
// derived totals, the display-only rounding fields, the amount in words
// for the printed document, and the legacy lifecycle flag pair alongside
// the collapsed state.
type InvoiceResponse struct {
	ID                 string                      `json:"id"`
	InvoiceNumber      string                      `json:"invoice_number"`
	FinalInvoiceNumber *string                     `json:"final_invoice_number,omitempty"`
	InvoiceType        types.InvoiceType           `json:"invoice_type"`
	LifecycleState     types.InvoiceLifecycleState `json:"lifecycle_state"`
	IsFinal            bool                        `json:"is_final"`
	IsSavedFinal       bool                        `json:"is_saved_final"`
	ClientID           string                      `json:"client"`
	BranchID           string                      `json:"branch_address"`
	BankAccountID      string                      `json:"bank_account"`
	InvoiceDate        string                      `json:"invoice_date"`
	DueDate            string                      `json:"due_date"`
	Currency           string                      `json:"currency_type"`
	PaymentTerms       types.PaymentTerm           `json:"payment_terms"`
	TaxOption          types.TaxOption             `json:"tax_option"`
	TaxName            string                      `json:"tax_name,omitempty"`
	TaxRate            *decimal.Decimal            `json:"tax_rate,omitempty"`
	Subtotal           decimal.Decimal             `json:"subtotal"`
	Gst                decimal.Decimal             `json:"gst"`
	Discount           decimal.Decimal             `json:"discount"`
	Shipping           decimal.Decimal             `json:"shipping"`
	AmountPaid         decimal.Decimal             `json:"amount_paid"`
	TotalDue           decimal.Decimal             `json:"total_due"`
	RoundedTotalDue    decimal.Decimal             `json:"rounded_total_due"`
	RoundingDelta      string                      `json:"rounding_delta"`
	TotalInWords       string                      `json:"total_in_words"`
	CreditBalance      bool                        `json:"credit_balance"`
	Items              []*LineItemResponse         `json:"items"`
}

// NewInvoiceResponse builds the read model from the domain aggregate.
func NewInvoiceResponse(inv *invoice.Invoice) (*InvoiceResponse, error) {
	totals, err := inv.Totals()
	if err != nil {
		return nil, err
	}

	isFinal, isSavedFinal := inv.LifecycleState.Flags()

	totalInWords := "N/A"
	if !totals.RoundedTotalDue.IsNegative() {
		totalInWords = numwords.ToWords(totals.RoundedTotalDue.IntPart())
	}

	items := lo.Map(inv.LineItems, func(li *invoice.LineItem, _ int) *LineItemResponse {
		return &LineItemResponse{
			ID:       li.ID,
			ItemType: li.ItemType,
			Name:     li.Name,
			Quantity: li.Quantity,
			UnitCost: li.UnitCost,
			Total:    li.Total,
			TotalGst: li.TaxAmount,
		}
	})

	return &InvoiceResponse{
		ID:                 inv.ID,
		InvoiceNumber:      inv.InvoiceNumber,
		FinalInvoiceNumber: inv.FinalInvoiceNumber,
		InvoiceType:        inv.InvoiceType,
		LifecycleState:     inv.LifecycleState,
		IsFinal:            isFinal,
		IsSavedFinal:       isSavedFinal,
		ClientID:           inv.ClientID,
		BranchID:           inv.BranchID,
		BankAccountID:      inv.BankAccountID,
		InvoiceDate:        inv.InvoiceDate.Format(dateLayout),
		DueDate:            inv.DueDate.Format(dateLayout),
		Currency:           inv.Currency,
		PaymentTerms:       inv.PaymentTerms,
		TaxOption:          inv.TaxOption,
		TaxName:            inv.TaxName,
		TaxRate:            inv.TaxRate,
		Subtotal:           inv.Subtotal,
		Gst:                inv.TotalTax,
		Discount:           inv.Discount,
		Shipping:           inv.Shipping,
		AmountPaid:         inv.AmountPaid,
		TotalDue:           inv.TotalDue,
		RoundedTotalDue:    totals.RoundedTotalDue,
		RoundingDelta:      totals.RoundingDeltaDisplay(),
		TotalInWords:       totalInWords,
		CreditBalance:      totals.IsCreditBalance(),
		Items:              items,
	}, nil
}

// ListInvoicesResponse is a paged invoice listing.
type ListInvoicesResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int                `json:"total"`
}

// FinalizeInvoiceResponse is returned when a proforma invoice is moved to
// final-pending. PrintSessionRef identifies the pending print flow.
type FinalizeInvoiceResponse struct {
	Invoice         *InvoiceResponse `json:"invoice"`
	PrintSessionRef string           `json:"print_session_ref"`
}
