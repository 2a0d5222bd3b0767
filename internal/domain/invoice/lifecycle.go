package invoice

import (
	"github.com/billcraft/billcraft/internal/types"
)

// transition moves the invoice to the target state after consulting the
// legality table. Every lifecycle method funnels through here so an
// illegal move always fails the same way.
func (i *Invoice) transition(to types.InvoiceLifecycleState) error {
	if !i.LifecycleState.CanTransition(to) {
		return NewIllegalTransitionError(i.LifecycleState.String(), to.String())
	}
	i.LifecycleState = to
	return nil
}

// MarkFinalPending finalizes a proforma invoice without confirming it.
// No final invoice number is assigned yet and the invoice stays editable
// until the print flow resolves.
func (i *Invoice) MarkFinalPending() error {
	if i.LifecycleState == types.LifecycleFinalPending {
		return NewIllegalTransitionError(i.LifecycleState.String(), types.LifecycleFinalPending.String())
	}
	return i.transition(types.LifecycleFinalPending)
}

// ConfirmFinal completes the print-and-confirm flow. The final invoice
// number comes from the branch sequence and is assigned exactly once.
func (i *Invoice) ConfirmFinal(finalNumber string) error {
	if err := i.transition(types.LifecycleFinalSaved); err != nil {
		return err
	}
	if i.FinalInvoiceNumber == nil && finalNumber != "" {
		i.FinalInvoiceNumber = &finalNumber
	}
	return nil
}

// CancelFinal routes a cancelled print back to proforma. Cancellation is
// an expected outcome, not an error.
func (i *Invoice) CancelFinal() error {
	if i.LifecycleState != types.LifecycleFinalPending {
		return NewIllegalTransitionError(i.LifecycleState.String(), types.LifecycleProforma.String())
	}
	return i.transition(types.LifecycleProforma)
}

// RevertToProforma is the administrative undo of a saved final invoice.
// The final invoice number, once assigned, is kept; final numbers are
// issued from a monotonic branch sequence and never reused.
func (i *Invoice) RevertToProforma() error {
	if i.LifecycleState != types.LifecycleFinalSaved {
		return NewIllegalTransitionError(i.LifecycleState.String(), types.LifecycleProforma.String())
	}
	return i.transition(types.LifecycleProforma)
}

// IsEditable reports whether the invoice may still be modified.
func (i *Invoice) IsEditable() bool {
	return i.LifecycleState.IsEditable()
}
