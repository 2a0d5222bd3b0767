package bankaccount

import (
	"context"
)

// Repository is the read-only port onto the bank account directory.
type Repository interface {
	Get(ctx context.Context, id string) (*BankAccount, error)
	List(ctx context.Context) ([]*BankAccount, error)
}
