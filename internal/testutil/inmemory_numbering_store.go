package testutil

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryNumberingStore implements invoice.NumberingRepository with a
// simple monotonic counter. Err simulates an unavailable sequence
// endpoint so tests can verify the timestamp fallback.
type InMemoryNumberingStore struct {
	mu   sync.Mutex
	last int64

	Err error
}

func NewInMemoryNumberingStore() *InMemoryNumberingStore {
	return &InMemoryNumberingStore{}
}

func (s *InMemoryNumberingStore) NextProformaNumber(ctx context.Context) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return fmt.Sprintf("INV-%05d", s.last), nil
}

// Clear resets the sequence.
func (s *InMemoryNumberingStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = 0
	s.Err = nil
}
