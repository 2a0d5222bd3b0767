package service

import (
	"context"

	"github.com/billcraft/billcraft/internal/api/dto"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/samber/lo"

	"github.com/billcraft/billcraft/internal/domain/bankaccount"
	"github.com/billcraft/billcraft/internal/domain/branch"
	"github.com/billcraft/billcraft/internal/domain/catalog"
	"github.com/billcraft/billcraft/internal/domain/client"
	"github.com/billcraft/billcraft/internal/domain/taxrate"
)

// CatalogService exposes the upstream-managed reference data the invoice
// screens draw from: product and service catalogs, tax rates, clients,
// branches, and bank accounts. Everything here is read-only.
type CatalogService interface {
	ListItems(ctx context.Context, itemType types.ItemType) ([]*dto.CatalogItemResponse, error)
	GetItemByName(ctx context.Context, itemType types.ItemType, name string) (*dto.CatalogItemResponse, error)
	ListTaxRates(ctx context.Context) ([]*dto.TaxRateResponse, error)
	ListClients(ctx context.Context) ([]*dto.ClientResponse, error)
	ListBranches(ctx context.Context) ([]*dto.BranchResponse, error)
	ListBankAccounts(ctx context.Context) ([]*dto.BankAccountResponse, error)
}

type catalogService struct {
	ServiceParams
}

func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{ServiceParams: params}
}

func (s *catalogService) ListItems(ctx context.Context, itemType types.ItemType) ([]*dto.CatalogItemResponse, error) {
	items, err := s.CatalogRepo.List(ctx, itemType)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(i *catalog.Item, _ int) *dto.CatalogItemResponse {
		return dto.NewCatalogItemResponse(i)
	}), nil
}

func (s *catalogService) GetItemByName(ctx context.Context, itemType types.ItemType, name string) (*dto.CatalogItemResponse, error) {
	item, err := s.CatalogRepo.GetByName(ctx, itemType, name)
	if err != nil {
		return nil, err
	}
	return dto.NewCatalogItemResponse(item), nil
}

func (s *catalogService) ListTaxRates(ctx context.Context) ([]*dto.TaxRateResponse, error) {
	rates, err := s.TaxRateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rates, func(t *taxrate.TaxRate, _ int) *dto.TaxRateResponse {
		return dto.NewTaxRateResponse(t)
	}), nil
}

func (s *catalogService) ListClients(ctx context.Context) ([]*dto.ClientResponse, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(clients, func(c *client.Client, _ int) *dto.ClientResponse {
		return dto.NewClientResponse(c)
	}), nil
}

func (s *catalogService) ListBranches(ctx context.Context) ([]*dto.BranchResponse, error) {
	branches, err := s.BranchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(branches, func(b *branch.Branch, _ int) *dto.BranchResponse {
		return dto.NewBranchResponse(b)
	}), nil
}

func (s *catalogService) ListBankAccounts(ctx context.Context) ([]*dto.BankAccountResponse, error) {
	accounts, err := s.BankAccountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(accounts, func(a *bankaccount.BankAccount, _ int) *dto.BankAccountResponse {
		return dto.NewBankAccountResponse(a)
	}), nil
}
