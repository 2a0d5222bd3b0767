package testutil

import (
	"context"
	"sort"

	"github.com/billcraft/billcraft/internal/domain/bankaccount"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// InMemoryBankAccountStore implements bankaccount.Repository
type InMemoryBankAccountStore struct {
	*InMemoryStore[*bankaccount.BankAccount]
}

func NewInMemoryBankAccountStore() *InMemoryBankAccountStore {
	return &InMemoryBankAccountStore{
		InMemoryStore: NewInMemoryStore[*bankaccount.BankAccount](),
	}
}

// AddAccount seeds a bank account.
func (s *InMemoryBankAccountStore) AddAccount(ctx context.Context, a *bankaccount.BankAccount) error {
	if a.ID == "" {
		a.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BANK_ACCOUNT)
	}
	return s.InMemoryStore.Create(ctx, a.ID, a)
}

func (s *InMemoryBankAccountStore) Get(ctx context.Context, id string) (*bankaccount.BankAccount, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("bank account not found").
			WithHintf("No bank account with ID %s", id).
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}

func (s *InMemoryBankAccountStore) List(ctx context.Context) ([]*bankaccount.BankAccount, error) {
	accounts, err := s.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].AccountNumber < accounts[j].AccountNumber })
	return accounts, nil
}
