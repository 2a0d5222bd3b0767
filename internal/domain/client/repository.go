package client

import (
	"context"
)

// Repository is the read-only port onto the client directory.
type Repository interface {
	Get(ctx context.Context, id string) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
}
