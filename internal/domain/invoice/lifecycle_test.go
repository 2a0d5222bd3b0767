package invoice

import (
	"testing"

	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proformaInvoice() *Invoice {
	return &Invoice{
		ID:             "inv_test",
		LifecycleState: types.LifecycleProforma,
	}
}

func TestMarkFinalPending(t *testing.T) {
	inv := proformaInvoice()

	require.NoError(t, inv.MarkFinalPending())
	assert.Equal(t, types.LifecycleFinalPending, inv.LifecycleState)
	assert.Nil(t, inv.FinalInvoiceNumber)
	assert.True(t, inv.IsEditable())

	// Finalizing an already pending invoice is rejected.
	err := inv.MarkFinalPending()
	require.Error(t, err)
	assert.True(t, ierr.IsIllegalTransition(err))
}

func TestConfirmFinal(t *testing.T) {
	inv := proformaInvoice()
	require.NoError(t, inv.MarkFinalPending())

	require.NoError(t, inv.ConfirmFinal("MB24250001"))
	assert.Equal(t, types.LifecycleFinalSaved, inv.LifecycleState)
	require.NotNil(t, inv.FinalInvoiceNumber)
	assert.Equal(t, "MB24250001", *inv.FinalInvoiceNumber)
	assert.False(t, inv.IsEditable())

	// Confirming again is an illegal transition.
	err := inv.ConfirmFinal("MB24250002")
	require.Error(t, err)
	assert.True(t, ierr.IsIllegalTransition(err))
	assert.Equal(t, "MB24250001", *inv.FinalInvoiceNumber)
}

func TestConfirmFinalFromProforma(t *testing.T) {
	inv := proformaInvoice()
	err := inv.ConfirmFinal("MB24250001")
	require.Error(t, err)
	assert.True(t, ierr.IsIllegalTransition(err))
	assert.Nil(t, inv.FinalInvoiceNumber)
}

func TestCancelFinal(t *testing.T) {
	inv := proformaInvoice()
	require.NoError(t, inv.MarkFinalPending())

	require.NoError(t, inv.CancelFinal())
	assert.Equal(t, types.LifecycleProforma, inv.LifecycleState)
	// A cancelled print never consumed a number.
	assert.Nil(t, inv.FinalInvoiceNumber)

	err := inv.CancelFinal()
	require.Error(t, err)
	assert.True(t, ierr.IsIllegalTransition(err))
}

func TestRevertToProforma(t *testing.T) {
	inv := proformaInvoice()
	require.NoError(t, inv.MarkFinalPending())
	require.NoError(t, inv.ConfirmFinal("MB24250001"))

	require.NoError(t, inv.RevertToProforma())
	assert.Equal(t, types.LifecycleProforma, inv.LifecycleState)
	// The issued number is kept; branch sequences never reuse values.
	require.NotNil(t, inv.FinalInvoiceNumber)
	assert.Equal(t, "MB24250001", *inv.FinalInvoiceNumber)
	assert.True(t, inv.IsEditable())

	// Reverting a proforma invoice is illegal.
	err := inv.RevertToProforma()
	require.Error(t, err)
	assert.True(t, ierr.IsIllegalTransition(err))
}

func TestRefinalizeKeepsExistingNumber(t *testing.T) {
	inv := proformaInvoice()
	require.NoError(t, inv.MarkFinalPending())
	require.NoError(t, inv.ConfirmFinal("MB24250001"))
	require.NoError(t, inv.RevertToProforma())

	// A second pass through the flow does not overwrite the number.
	require.NoError(t, inv.MarkFinalPending())
	require.NoError(t, inv.ConfirmFinal("MB24250009"))
	assert.Equal(t, "MB24250001", *inv.FinalInvoiceNumber)
}
