package bankaccount

import (
	"github.com/billcraft/billcraft/internal/types"
)

// BankAccount is a payee account referenced by invoices.
type BankAccount struct {
	ID            string `json:"id"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	types.BaseModel
}
