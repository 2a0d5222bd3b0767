package testutil

import (
	"context"
	"sort"

	"github.com/billcraft/billcraft/internal/domain/client"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/types"
)

// InMemoryClientStore implements client.Repository
type InMemoryClientStore struct {
	*InMemoryStore[*client.Client]
}

func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		InMemoryStore: NewInMemoryStore[*client.Client](),
	}
}

// AddClient seeds a client.
func (s *InMemoryClientStore) AddClient(ctx context.Context, c *client.Client) error {
	if c.ID == "" {
		c.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT)
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryClientStore) Get(ctx context.Context, id string) (*client.Client, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("client not found").
			WithHintf("No client with ID %s", id).
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (s *InMemoryClientStore) List(ctx context.Context) ([]*client.Client, error) {
	clients, err := s.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}
