package testutil

import (
	"context"

	"github.com/billcraft/billcraft/internal/domain/invoice"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/samber/lo"
)

// InMemoryInvoiceStore implements invoice.Repository. Line items are
// held by the line item store and joined on read, matching the upstream
// API where GET invoice returns its items inline.
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
	lineItems *InMemoryLineItemStore
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore(lineItems *InMemoryLineItemStore) *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
		lineItems:     lineItems,
	}
}

// Helper to copy invoice
func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	c := *inv
	if inv.FinalInvoiceNumber != nil {
		n := *inv.FinalInvoiceNumber
		c.FinalInvoiceNumber = &n
	}
	if inv.TaxRate != nil {
		r := *inv.TaxRate
		c.TaxRate = &r
	}
	c.LineItems = nil
	return &c
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	if inv.ID == "" {
		inv.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE)
	}
	return s.InMemoryStore.Create(ctx, inv.ID, copyInvoice(inv))
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("invoice not found").
			WithHintf("No invoice with ID %s", id).
			Mark(ierr.ErrNotFound)
	}

	result := copyInvoice(inv)
	items, err := s.lineItems.ListByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	result.LineItems = items
	return result, nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	if err := s.InMemoryStore.Update(ctx, inv.ID, copyInvoice(inv)); err != nil {
		return ierr.NewError("invoice not found").
			WithHintf("No invoice with ID %s", inv.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryInvoiceStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("invoice not found").
			WithHintf("No invoice with ID %s", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func invoiceFilterFn(_ context.Context, inv *invoice.Invoice, filter interface{}) bool {
	f, ok := filter.(*types.InvoiceFilter)
	if !ok || f == nil {
		return true
	}
	if f.ClientID != "" && inv.ClientID != f.ClientID {
		return false
	}
	if f.InvoiceType != "" && inv.InvoiceType != f.InvoiceType {
		return false
	}
	if len(f.LifecycleStates) > 0 && !lo.Contains(f.LifecycleStates, inv.LifecycleState) {
		return false
	}
	return true
}

func invoiceSortFn(i, j *invoice.Invoice) bool {
	return i.ID < j.ID
}

func (s *InMemoryInvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	invoices, err := s.InMemoryStore.List(ctx, filter, invoiceFilterFn, invoiceSortFn)
	if err != nil {
		return nil, err
	}

	result := make([]*invoice.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		c := copyInvoice(inv)
		items, err := s.lineItems.ListByInvoice(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		c.LineItems = items
		result = append(result, c)
	}
	return result, nil
}

func (s *InMemoryInvoiceStore) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, invoiceFilterFn)
}
