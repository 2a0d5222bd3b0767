package testutil

import (
	"context"
	"sort"

	"github.com/billcraft/billcraft/internal/domain/taxrate"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// InMemoryTaxRateStore implements taxrate.Repository
type InMemoryTaxRateStore struct {
	*InMemoryStore[*taxrate.TaxRate]
}

func NewInMemoryTaxRateStore() *InMemoryTaxRateStore {
	return &InMemoryTaxRateStore{
		InMemoryStore: NewInMemoryStore[*taxrate.TaxRate](),
	}
}

// AddRate seeds a tax rate.
func (s *InMemoryTaxRateStore) AddRate(ctx context.Context, rate *taxrate.TaxRate) error {
	if rate.ID == "" {
		rate.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TAX_RATE)
	}
	return s.InMemoryStore.Create(ctx, rate.ID, rate)
}

func (s *InMemoryTaxRateStore) Get(ctx context.Context, id string) (*taxrate.TaxRate, error) {
	rate, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("tax rate not found").
			WithHintf("No tax rate with ID %s", id).
			Mark(ierr.ErrNotFound)
	}
	return rate, nil
}

func (s *InMemoryTaxRateStore) List(ctx context.Context) ([]*taxrate.TaxRate, error) {
	rates, err := s.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Name < rates[j].Name })
	return rates, nil
}
