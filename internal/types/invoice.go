package types

import (
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/samber/lo"
)

// InvoiceType constrains which catalog a line item may reference.
type InvoiceType string

const (
	InvoiceTypeProduct InvoiceType = "product"
	InvoiceTypeService InvoiceType = "service"
)

func (t InvoiceType) String() string {
	return string(t)
}

func (t InvoiceType) Validate() error {
	allowed := []InvoiceType{
		InvoiceTypeProduct,
		InvoiceTypeService,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid invoice type").
			WithHint("Please provide a valid invoice type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ItemType mirrors InvoiceType at the line item level. Every item on an
// invoice must carry the invoice's own type.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) Validate() error {
	allowed := []ItemType{
		ItemTypeProduct,
		ItemTypeService,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid item type").
			WithHint("Please provide a valid item type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Matches reports whether the item type agrees with the invoice type.
func (t ItemType) Matches(invoiceType InvoiceType) bool {
	return string(t) == string(invoiceType)
}

// TaxOption indicates whether a named tax rate applies to the invoice.
type TaxOption string

const (
	TaxOptionYes TaxOption = "yes"
	TaxOptionNo  TaxOption = "no"
)

func (o TaxOption) String() string {
	return string(o)
}

func (o TaxOption) Validate() error {
	allowed := []TaxOption{
		TaxOptionYes,
		TaxOptionNo,
	}
	if !lo.Contains(allowed, o) {
		return ierr.NewError("invalid tax option").
			WithHint("Please provide a valid tax option").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoiceLifecycleState is the single closed representation of the
// proforma/final lifecycle. The upstream API stores it as two booleans
// (is_final, is_saved_final); collapsing them here makes the combination
// is_saved_final=true with is_final=false unrepresentable.
type InvoiceLifecycleState string

const (
	// LifecycleProforma is the initial draft state; the invoice is editable
	LifecycleProforma InvoiceLifecycleState = "proforma"
	// LifecycleFinalPending marks an invoice finalized but not yet confirmed
	// via the print flow; no final number has been assigned yet
	LifecycleFinalPending InvoiceLifecycleState = "final_pending"
	// LifecycleFinalSaved is the terminal state of the normal flow; the
	// final invoice number has been assigned
	LifecycleFinalSaved InvoiceLifecycleState = "final_saved"
)

func (s InvoiceLifecycleState) String() string {
	return string(s)
}

func (s InvoiceLifecycleState) Validate() error {
	allowed := []InvoiceLifecycleState{
		LifecycleProforma,
		LifecycleFinalPending,
		LifecycleFinalSaved,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice lifecycle state").
			WithHint("Please provide a valid lifecycle state").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// lifecycleTransitions is the closed legality table. A state maps to the
// exact set of states reachable in one step.
var lifecycleTransitions = map[InvoiceLifecycleState][]InvoiceLifecycleState{
	LifecycleProforma:     {LifecycleProforma, LifecycleFinalPending},
	LifecycleFinalPending: {LifecycleFinalSaved, LifecycleProforma},
	LifecycleFinalSaved:   {LifecycleProforma},
}

// CanTransition reports whether a one-step transition to target is legal.
func (s InvoiceLifecycleState) CanTransition(target InvoiceLifecycleState) bool {
	return lo.Contains(lifecycleTransitions[s], target)
}

// IsEditable reports whether line items and header fields may still change.
// FinalPending invoices remain editable until the print flow confirms them.
func (s InvoiceLifecycleState) IsEditable() bool {
	return s != LifecycleFinalSaved
}

// FromLifecycleFlags collapses the upstream flag pair into the enum.
// The pair (is_final=false, is_saved_final=true) has no meaning and is
// rejected rather than silently coerced.
func FromLifecycleFlags(isFinal, isSavedFinal bool) (InvoiceLifecycleState, error) {
	switch {
	case !isFinal && isSavedFinal:
		return "", ierr.NewError("inconsistent lifecycle flags").
			WithHint("Invoice is marked saved-final without being final").
			WithReportableDetails(map[string]any{
				"is_final":       isFinal,
				"is_saved_final": isSavedFinal,
			}).
			Mark(ierr.ErrValidation)
	case isFinal && isSavedFinal:
		return LifecycleFinalSaved, nil
	case isFinal:
		return LifecycleFinalPending, nil
	default:
		return LifecycleProforma, nil
	}
}

// Flags maps the enum back onto the upstream flag pair.
func (s InvoiceLifecycleState) Flags() (isFinal, isSavedFinal bool) {
	switch s {
	case LifecycleFinalSaved:
		return true, true
	case LifecycleFinalPending:
		return true, false
	default:
		return false, false
	}
}

// PaymentTerm is a free-choice string from a fixed set.
type PaymentTerm string

const (
	PaymentTermCredit     PaymentTerm = "Credit"
	PaymentTermDebit      PaymentTerm = "Debit"
	PaymentTermUPI        PaymentTerm = "UPI"
	PaymentTermNetBanking PaymentTerm = "Net Banking"
)

func (p PaymentTerm) String() string {
	return string(p)
}

func (p PaymentTerm) Validate() error {
	allowed := []PaymentTerm{
		PaymentTermCredit,
		PaymentTermDebit,
		PaymentTermUPI,
		PaymentTermNetBanking,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid payment terms").
			WithHint("Please provide valid payment terms").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// SupportedCurrencies are display-only codes; no conversion is performed.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "INR"}

func ValidateCurrency(code string) error {
	if !lo.Contains(SupportedCurrencies, code) {
		return ierr.NewError("invalid currency code").
			WithHint("Please provide a supported currency code").
			WithReportableDetails(map[string]any{
				"allowed": SupportedCurrencies,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoiceFilter represents the filter options for listing invoices
type InvoiceFilter struct {
	*QueryFilter

	// ClientID filters invoices for a specific client
	ClientID string `json:"client_id,omitempty" form:"client_id"`

	// InvoiceType filters by the catalog the invoice draws from
	InvoiceType InvoiceType `json:"invoice_type,omitempty" form:"invoice_type"`

	// LifecycleStates filters by lifecycle state. The proforma listing
	// screen uses {proforma, final_pending}; the final listing uses
	// {final_saved}.
	LifecycleStates []InvoiceLifecycleState `json:"lifecycle_states,omitempty" form:"lifecycle_states"`
}

// NewInvoiceFilter creates a new invoice filter with default options
func NewInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewProformaInvoiceFilter matches the non-final listing screen
// (is_saved_final == false, which includes final-pending invoices).
func NewProformaInvoiceFilter() *InvoiceFilter {
	f := NewInvoiceFilter()
	f.LifecycleStates = []InvoiceLifecycleState{LifecycleProforma, LifecycleFinalPending}
	return f
}

// NewFinalInvoiceFilter matches the final listing screen.
func NewFinalInvoiceFilter() *InvoiceFilter {
	f := NewInvoiceFilter()
	f.LifecycleStates = []InvoiceLifecycleState{LifecycleFinalSaved}
	return f
}

func (f *InvoiceFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return ierr.WithError(err).WithHint("invalid query filter").Mark(ierr.ErrValidation)
		}
	}
	if f.InvoiceType != "" {
		if err := f.InvoiceType.Validate(); err != nil {
			return err
		}
	}
	for _, s := range f.LifecycleStates {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetLimit implements BaseFilter interface
func (f *InvoiceFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

// GetOffset implements BaseFilter interface
func (f *InvoiceFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *InvoiceFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
