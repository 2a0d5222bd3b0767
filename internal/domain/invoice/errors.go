package invoice

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvoiceNotFound is returned when an invoice is not found
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrMismatchedItemType is returned when a line item's type disagrees
	// with the invoice type
	ErrMismatchedItemType = errors.New("mismatched item type")
)

// NewInvalidQuantityError reports a quantity below 1.
func NewInvalidQuantityError(quantity int64) error {
	return ierr.NewError("invalid quantity").
		WithHint("Quantity must be at least 1").
		WithReportableDetails(map[string]any{
			"quantity": quantity,
		}).
		Mark(ierr.ErrValidation)
}

// NewInvalidAmountError reports a negative money amount or rate.
func NewInvalidAmountError(field string, amount decimal.Decimal) error {
	return ierr.NewError("invalid amount").
		WithHintf("%s must be non negative", field).
		WithReportableDetails(map[string]any{
			"field":  field,
			"amount": amount.String(),
		}).
		Mark(ierr.ErrValidation)
}

// NewMismatchedItemTypeError reports a line item whose type disagrees with
// the invoice type. This is caught before submission, never coerced.
func NewMismatchedItemTypeError(invoiceType, itemType, itemName string) error {
	return ierr.WithError(ErrMismatchedItemType).
		WithHintf("Item %q is a %s item but the invoice is a %s invoice", itemName, itemType, invoiceType).
		WithReportableDetails(map[string]any{
			"invoice_type": invoiceType,
			"item_type":    itemType,
			"item_name":    itemName,
		}).
		Mark(ierr.ErrValidation)
}

// PartialPersistError reports the per-item outcome of a Create or Edit
// transition in which some item operations failed after the invoice
// header was already persisted. The header is left in whatever state the
// backend holds; no rollback is attempted.
type PartialPersistError struct {
	InvoiceID string
	Succeeded []string
	Failed    map[string]error
}

func (e *PartialPersistError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return fmt.Sprintf("invoice %s: %d of %d item operations failed: %s",
		e.InvoiceID, len(e.Failed), len(e.Failed)+len(e.Succeeded), strings.Join(ids, ", "))
}

// NewPartialPersistError wraps the per-item outcome so callers can both
// match it with errors.As and render the failed IDs to the user.
func NewPartialPersistError(ppe *PartialPersistError) error {
	failed := make(map[string]any, len(ppe.Failed))
	for id, err := range ppe.Failed {
		failed[id] = err.Error()
	}
	return ierr.WithError(ppe).
		WithHint("Some line items could not be saved; the invoice header was saved").
		WithReportableDetails(map[string]any{
			"invoice_id": ppe.InvoiceID,
			"succeeded":  ppe.Succeeded,
			"failed":     failed,
		}).
		Mark(ierr.ErrPartialPersist)
}

// NewIllegalTransitionError reports a lifecycle transition outside the
// legality table.
func NewIllegalTransitionError(from, to string) error {
	return ierr.NewError("illegal lifecycle transition").
		WithHintf("Cannot move invoice from %s to %s", from, to).
		WithReportableDetails(map[string]any{
			"from": from,
			"to":   to,
		}).
		Mark(ierr.ErrIllegalTransition)
}

// ValidationError represents an error that occurs during invoice validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return ierr.WithError(&ValidationError{Field: field, Message: message}).
		WithHintf("%s: %s", field, message).
		WithReportableDetails(map[string]any{
			"field": field,
		}).
		Mark(ierr.ErrValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrInvoiceNotFound) || ierr.IsNotFound(err)
}
