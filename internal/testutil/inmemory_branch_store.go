package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/billcraft/billcraft/internal/domain/branch"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// InMemoryBranchStore implements branch.Repository. Final invoice
// numbers are drawn from a per-branch monotonic sequence; issued values
// are never reused even if the caller later reverts the invoice.
type InMemoryBranchStore struct {
	*InMemoryStore[*branch.Branch]

	mu sync.Mutex

	// NextNumberErr simulates an unavailable branch sequence endpoint
	NextNumberErr error
}

func NewInMemoryBranchStore() *InMemoryBranchStore {
	return &InMemoryBranchStore{
		InMemoryStore: NewInMemoryStore[*branch.Branch](),
	}
}

// AddBranch seeds a branch.
func (s *InMemoryBranchStore) AddBranch(ctx context.Context, b *branch.Branch) error {
	if b.ID == "" {
		b.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BRANCH)
	}
	return s.InMemoryStore.Create(ctx, b.ID, b)
}

func (s *InMemoryBranchStore) Get(ctx context.Context, id string) (*branch.Branch, error) {
	b, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("branch not found").
			WithHintf("No branch with ID %s", id).
			Mark(ierr.ErrNotFound)
	}
	return b, nil
}

func (s *InMemoryBranchStore) List(ctx context.Context) ([]*branch.Branch, error) {
	branches, err := s.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Code < branches[j].Code })
	return branches, nil
}

func (s *InMemoryBranchStore) NextFinalInvoiceNumber(ctx context.Context, branchID string) (string, error) {
	if s.NextNumberErr != nil {
		return "", s.NextNumberErr
	}

	b, err := s.Get(ctx, branchID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b.LastSequence++
	return b.FormatFinalNumber(b.LastSequence, time.Now()), nil
}
