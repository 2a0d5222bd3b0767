package service

import (
	"testing"

	"github.com/billcraft/billcraft/internal/domain/catalog"
	"github.com/billcraft/billcraft/internal/domain/client"
	"github.com/billcraft/billcraft/internal/domain/taxrate"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/testutil"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CatalogService
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewCatalogService(ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		InvoiceRepo:     stores.InvoiceRepo,
		LineItemRepo:    stores.LineItemRepo,
		NumberingRepo:   stores.NumberingRepo,
		CatalogRepo:     stores.CatalogRepo,
		TaxRateRepo:     stores.TaxRateRepo,
		ClientRepo:      stores.ClientRepo,
		BranchRepo:      stores.BranchRepo,
		BankAccountRepo: stores.BankAccountRepo,
	})

	ctx := s.GetContext()
	s.NoError(stores.CatalogRepo.AddItem(ctx, &catalog.Item{
		Name: "Widget", Type: types.ItemTypeProduct, UnitCost: decimal.NewFromInt(50),
	}))
	s.NoError(stores.CatalogRepo.AddItem(ctx, &catalog.Item{
		Name: "Consulting", Type: types.ItemTypeService, UnitCost: decimal.NewFromInt(100),
	}))
	s.NoError(stores.TaxRateRepo.AddRate(ctx, &taxrate.TaxRate{
		Name: "GST 18%", Percentage: decimal.NewFromInt(18),
	}))
	s.NoError(stores.ClientRepo.AddClient(ctx, &client.Client{Name: "Acme Traders"}))
}

func (s *CatalogServiceSuite) TestListItemsFiltersByType() {
	products, err := s.service.ListItems(s.GetContext(), types.ItemTypeProduct)
	s.NoError(err)
	s.Len(products, 1)
	s.Equal("Widget", products[0].Name)

	services, err := s.service.ListItems(s.GetContext(), types.ItemTypeService)
	s.NoError(err)
	s.Len(services, 1)
	s.Equal("Consulting", services[0].Name)
}

func (s *CatalogServiceSuite) TestGetItemByName() {
	item, err := s.service.GetItemByName(s.GetContext(), types.ItemTypeProduct, "Widget")
	s.NoError(err)
	s.True(decimal.NewFromInt(50).Equal(item.UnitCost))

	_, err = s.service.GetItemByName(s.GetContext(), types.ItemTypeProduct, "Sprocket")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CatalogServiceSuite) TestListReferenceData() {
	rates, err := s.service.ListTaxRates(s.GetContext())
	s.NoError(err)
	s.Len(rates, 1)

	clients, err := s.service.ListClients(s.GetContext())
	s.NoError(err)
	s.Len(clients, 1)

	branches, err := s.service.ListBranches(s.GetContext())
	s.NoError(err)
	s.Empty(branches)

	accounts, err := s.service.ListBankAccounts(s.GetContext())
	s.NoError(err)
	s.Empty(accounts)
}
