package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLifecycleFlags(t *testing.T) {
	tests := []struct {
		name          string
		isFinal       bool
		isSavedFinal  bool
		expected      InvoiceLifecycleState
		expectedError bool
	}{
		{name: "proforma", isFinal: false, isSavedFinal: false, expected: LifecycleProforma},
		{name: "final_pending", isFinal: true, isSavedFinal: false, expected: LifecycleFinalPending},
		{name: "final_saved", isFinal: true, isSavedFinal: true, expected: LifecycleFinalSaved},
		{name: "saved_without_final_rejected", isFinal: false, isSavedFinal: true, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := FromLifecycleFlags(tt.isFinal, tt.isSavedFinal)
			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, state)

			// The flag pair round-trips for every legal state.
			isFinal, isSavedFinal := state.Flags()
			assert.Equal(t, tt.isFinal, isFinal)
			assert.Equal(t, tt.isSavedFinal, isSavedFinal)
		})
	}
}

func TestCanTransition(t *testing.T) {
	states := []InvoiceLifecycleState{LifecycleProforma, LifecycleFinalPending, LifecycleFinalSaved}
	legal := map[InvoiceLifecycleState]map[InvoiceLifecycleState]bool{
		LifecycleProforma:     {LifecycleProforma: true, LifecycleFinalPending: true},
		LifecycleFinalPending: {LifecycleFinalSaved: true, LifecycleProforma: true},
		LifecycleFinalSaved:   {LifecycleProforma: true},
	}

	for _, from := range states {
		for _, to := range states {
			assert.Equal(t, legal[from][to], from.CanTransition(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestIsEditable(t *testing.T) {
	assert.True(t, LifecycleProforma.IsEditable())
	assert.True(t, LifecycleFinalPending.IsEditable())
	assert.False(t, LifecycleFinalSaved.IsEditable())
}

func TestInvoiceListFilters(t *testing.T) {
	proforma := NewProformaInvoiceFilter()
	assert.ElementsMatch(t,
		[]InvoiceLifecycleState{LifecycleProforma, LifecycleFinalPending},
		proforma.LifecycleStates)
	require.NoError(t, proforma.Validate())

	final := NewFinalInvoiceFilter()
	assert.ElementsMatch(t,
		[]InvoiceLifecycleState{LifecycleFinalSaved},
		final.LifecycleStates)
	require.NoError(t, final.Validate())
}

func TestEnumValidation(t *testing.T) {
	assert.NoError(t, InvoiceTypeProduct.Validate())
	assert.NoError(t, InvoiceTypeService.Validate())
	assert.Error(t, InvoiceType("goods").Validate())

	assert.NoError(t, TaxOptionYes.Validate())
	assert.Error(t, TaxOption("maybe").Validate())

	assert.NoError(t, PaymentTermUPI.Validate())
	assert.NoError(t, PaymentTermNetBanking.Validate())
	assert.Error(t, PaymentTerm("Cheque").Validate())

	assert.NoError(t, ValidateCurrency("INR"))
	assert.Error(t, ValidateCurrency("JPY"))

	assert.True(t, ItemTypeProduct.Matches(InvoiceTypeProduct))
	assert.False(t, ItemTypeService.Matches(InvoiceTypeProduct))
}
