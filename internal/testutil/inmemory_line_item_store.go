package testutil

import (
	"context"
	"sort"

	"github.com/billcraft/billcraft/internal/domain/invoice"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// InMemoryLineItemStore implements invoice.LineItemRepository.
// Per-item failures can be injected by name or ID to exercise the
// partial persistence reporting in the service layer.
type InMemoryLineItemStore struct {
	*InMemoryStore[*invoice.LineItem]

	// CreateFailures fails Create for items with a matching name
	CreateFailures map[string]error
	// UpdateFailures fails Update for items with a matching ID
	UpdateFailures map[string]error
	// DeleteFailures fails Delete for a matching ID
	DeleteFailures map[string]error
}

func NewInMemoryLineItemStore() *InMemoryLineItemStore {
	return &InMemoryLineItemStore{
		InMemoryStore:  NewInMemoryStore[*invoice.LineItem](),
		CreateFailures: make(map[string]error),
		UpdateFailures: make(map[string]error),
		DeleteFailures: make(map[string]error),
	}
}

func copyLineItem(item *invoice.LineItem) *invoice.LineItem {
	if item == nil {
		return nil
	}
	c := *item
	return &c
}

func (s *InMemoryLineItemStore) Create(ctx context.Context, item *invoice.LineItem) error {
	if err, ok := s.CreateFailures[item.Name]; ok {
		return err
	}
	if item.ID == "" {
		item.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM)
	}
	return s.InMemoryStore.Create(ctx, item.ID, copyLineItem(item))
}

func (s *InMemoryLineItemStore) Update(ctx context.Context, item *invoice.LineItem) error {
	if err, ok := s.UpdateFailures[item.ID]; ok {
		return err
	}
	if err := s.InMemoryStore.Update(ctx, item.ID, copyLineItem(item)); err != nil {
		return ierr.NewError("line item not found").
			WithHintf("No line item with ID %s", item.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryLineItemStore) Delete(ctx context.Context, id string) error {
	if err, ok := s.DeleteFailures[id]; ok {
		return err
	}
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("line item not found").
			WithHintf("No line item with ID %s", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryLineItemStore) ListByInvoice(ctx context.Context, invoiceID string) ([]*invoice.LineItem, error) {
	items, err := s.InMemoryStore.List(ctx, nil, func(_ context.Context, item *invoice.LineItem, _ interface{}) bool {
		return item.InvoiceID == invoiceID
	}, nil)
	if err != nil {
		return nil, err
	}

	result := make([]*invoice.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, copyLineItem(item))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
