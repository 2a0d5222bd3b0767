package dto

import (
	"github.com/billcraft/billcraft/internal/domain/bankaccount"
	"github.com/billcraft/billcraft/internal/domain/branch"
	"github.com/billcraft/billcraft/internal/domain/catalog"
	"github.com/billcraft/billcraft/internal/domain/client"
	"github.com/billcraft/billcraft/internal/domain/taxrate"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// CatalogItemResponse is a product or service available for invoicing.
type CatalogItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	ItemType types.ItemType  `json:"item_type"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

func NewCatalogItemResponse(item *catalog.Item) *CatalogItemResponse {
	return &CatalogItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		ItemType: item.Type,
		UnitCost: item.UnitCost,
	}
}

type TaxRateResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
}

func NewTaxRateResponse(t *taxrate.TaxRate) *TaxRateResponse {
	return &TaxRateResponse{ID: t.ID, Name: t.Name, Percentage: t.Percentage}
}

type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func NewClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email, Address: c.Address}
}

type BranchResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Address string `json:"branch_address"`
}

func NewBranchResponse(b *branch.Branch) *BranchResponse {
	return &BranchResponse{ID: b.ID, Code: b.Code, Address: b.Address}
}

type BankAccountResponse struct {
	ID            string `json:"id"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
}

func NewBankAccountResponse(a *bankaccount.BankAccount) *BankAccountResponse {
	return &BankAccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		BankName:      a.BankName,
		IFSC:          a.IFSC,
	}
}
