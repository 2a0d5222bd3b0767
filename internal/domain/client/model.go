package client

import (
	"github.com/billcraft/billcraft/internal/types"
)

// Client is a billable customer referenced by invoices. The invoice core
// only needs the reference to exist; contact details live upstream.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	types.BaseModel
}
