package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/billcraft/billcraft/internal/api/dto"
	"github.com/billcraft/billcraft/internal/domain/bankaccount"
	"github.com/billcraft/billcraft/internal/domain/branch"
	"github.com/billcraft/billcraft/internal/domain/catalog"
	"github.com/billcraft/billcraft/internal/domain/client"
	"github.com/billcraft/billcraft/internal/domain/invoice"
	"github.com/billcraft/billcraft/internal/domain/taxrate"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/testutil"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  InvoiceService
	testData struct {
		client  *client.Client
		branch  *branch.Branch
		account *bankaccount.BankAccount
		gst     *taxrate.TaxRate
	}
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupTestData()

	stores := s.GetStores()
	s.service = NewInvoiceService(ServiceParams{
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
}

func (s *InvoiceServiceSuite) setupTestData() {
	ctx := s.GetContext()
	stores := s.GetStores()

	s.testData.client = &client.Client{Name: "Acme Traders"}
	s.NoError(stores.ClientRepo.AddClient(ctx, s.testData.client))

	s.testData.branch = &branch.Branch{Code: "MB", Address: "12 Market Road, Mumbai"}
	s.NoError(stores.BranchRepo.AddBranch(ctx, s.testData.branch))

	s.testData.account = &bankaccount.BankAccount{AccountNumber: "000111222333", BankName: "State Bank"}
	s.NoError(stores.BankAccountRepo.AddAccount(ctx, s.testData.account))

	s.testData.gst = &taxrate.TaxRate{Name: "GST 18%", Percentage: decimal.NewFromInt(18)}
	s.NoError(stores.TaxRateRepo.AddRate(ctx, s.testData.gst))

	s.NoError(stores.CatalogRepo.AddItem(ctx, &catalog.Item{
		Name: "Widget", Type: types.ItemTypeProduct, UnitCost: decimal.NewFromInt(50),
	}))
	s.NoError(stores.CatalogRepo.AddItem(ctx, &catalog.Item{
		Name: "Gadget", Type: types.ItemTypeProduct, UnitCost: decimal.NewFromInt(20),
	}))
}

func (s *InvoiceServiceSuite) newCreateRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceType:   types.InvoiceTypeProduct,
		ClientID:      s.testData.client.ID,
		BranchID:      s.testData.branch.ID,
		BankAccountID: s.testData.account.ID,
		InvoiceDate:   "2026-05-10",
		DueDate:       "2026-06-10",
		Currency:      "INR",
		PaymentTerms:  types.PaymentTermUPI,
		TaxOption:     types.TaxOptionYes,
		TaxRateID:     s.testData.gst.ID,
		Items: []dto.LineItemRequest{
			{ItemType: types.ItemTypeProduct, Name: "Widget", Quantity: 2},
		},
	}
}

func (s *InvoiceServiceSuite) TestCreateInvoice() {
	resp, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NotNil(resp)

	s.Equal("INV-00001", resp.InvoiceNumber)
	s.Equal(types.LifecycleProforma, resp.LifecycleState)
	s.False(resp.IsFinal)
	s.False(resp.IsSavedFinal)
	s.Equal("GST 18%", resp.TaxName)

	// 2 x 50 at 18% tax
	s.True(decimal.NewFromInt(100).Equal(resp.Subtotal))
	s.True(decimal.NewFromInt(18).Equal(resp.Gst))
	s.True(decimal.NewFromInt(118).Equal(resp.TotalDue))
	s.True(decimal.NewFromInt(118).Equal(resp.RoundedTotalDue))
	s.Equal("+0.00", resp.RoundingDelta)
	s.Equal("One Hundred Eighteen", resp.TotalInWords)

	s.Len(resp.Items, 1)
	s.NotEmpty(resp.Items[0].ID)
	// Product prices come from the catalog, not the request.
	s.True(decimal.NewFromInt(50).Equal(resp.Items[0].UnitCost))

	// A second invoice advances the proforma sequence.
	resp2, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.Equal("INV-00002", resp2.InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceServiceItemsUseSuppliedCost() {
	req := s.newCreateRequest()
	req.InvoiceType = types.InvoiceTypeService
	req.TaxOption = types.TaxOptionNo
	req.TaxRateID = ""
	req.Items = []dto.LineItemRequest{
		{ItemType: types.ItemTypeService, Name: "Consulting", Quantity: 3, UnitCost: lo.ToPtr(decimal.NewFromInt(100))},
	}

	resp, err := s.service.CreateInvoice(s.GetContext(), req)
	s.NoError(err)
	s.True(decimal.NewFromInt(300).Equal(resp.TotalDue))
	s.True(resp.Gst.IsZero())
	s.Empty(resp.TaxName)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceMismatchedItemType() {
	req := s.newCreateRequest()
	req.Items = append(req.Items, dto.LineItemRequest{
		ItemType: types.ItemTypeService, Name: "Consulting", Quantity: 1, UnitCost: lo.ToPtr(decimal.NewFromInt(10)),
	})

	_, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceDueDateBeforeInvoiceDate() {
	req := s.newCreateRequest()
	req.DueDate = "2026-05-01"

	_, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceCatalogUnavailable() {
	s.GetStores().CatalogRepo.ListErr = errors.New("catalog down")

	_, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.Error(err)
	s.True(ierr.IsExternalLookup(err))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceNumberFallback() {
	s.GetStores().NumberingRepo.Err = errors.New("sequence down")

	resp, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.True(strings.HasPrefix(resp.InvoiceNumber, "INV-"))
	s.NotEqual("INV-00001", resp.InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestCreateInvoicePartialPersist() {
	req := s.newCreateRequest()
	req.Items = append(req.Items, dto.LineItemRequest{
		ItemType: types.ItemTypeProduct, Name: "Gadget", Quantity: 1,
	})
	s.GetStores().LineItemRepo.CreateFailures["Gadget"] = errors.New("write refused")

	_, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsPartialPersist(err))

	var ppe *invoice.PartialPersistError
	s.True(errors.As(err, &ppe))
	s.Len(ppe.Succeeded, 1)
	s.Contains(ppe.Failed, "Gadget")

	// The header and the surviving item were persisted anyway.
	filter := types.NewProformaInvoiceFilter()
	invoices, listErr := s.GetStores().InvoiceRepo.List(s.GetContext(), filter)
	s.NoError(listErr)
	s.Len(invoices, 1)
	s.Len(invoices[0].LineItems, 1)
	s.Equal("Widget", invoices[0].LineItems[0].Name)
}

func (s *InvoiceServiceSuite) TestUpdateInvoiceReconcilesItems() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	// Bump the surviving row, add a Gadget row.
	req := s.newCreateRequest()
	req.Items = []dto.LineItemRequest{
		{ID: created.Items[0].ID, ItemType: types.ItemTypeProduct, Name: "Widget", Quantity: 3},
		{ItemType: types.ItemTypeProduct, Name: "Gadget", Quantity: 1},
	}

	resp, err := s.service.UpdateInvoice(s.GetContext(), created.ID, req)
	s.NoError(err)
	// 3 x 50 + 1 x 20 = 170, tax 30.60
	s.True(decimal.NewFromInt(170).Equal(resp.Subtotal))
	s.True(decimal.RequireFromString("30.60").Equal(resp.Gst))
	s.Len(resp.Items, 2)

	// Now drop the Gadget row entirely.
	req.Items = req.Items[:1]
	resp, err = s.service.UpdateInvoice(s.GetContext(), created.ID, req)
	s.NoError(err)
	s.Len(resp.Items, 1)

	stored, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	s.Len(stored.LineItems, 1)
	s.Equal("Widget", stored.LineItems[0].Name)
	s.Equal(int64(3), stored.LineItems[0].Quantity)
}

func (s *InvoiceServiceSuite) TestUpdateInvoicePartialPersist() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	itemID := created.Items[0].ID
	s.GetStores().LineItemRepo.UpdateFailures[itemID] = errors.New("write refused")

	req := s.newCreateRequest()
	req.Items = []dto.LineItemRequest{
		{ID: itemID, ItemType: types.ItemTypeProduct, Name: "Widget", Quantity: 5},
	}

	_, err = s.service.UpdateInvoice(s.GetContext(), created.ID, req)
	s.Error(err)
	s.True(ierr.IsPartialPersist(err))

	var ppe *invoice.PartialPersistError
	s.True(errors.As(err, &ppe))
	s.Contains(ppe.Failed, itemID)
}

func (s *InvoiceServiceSuite) TestUpdateSavedFinalInvoiceRejected() {
	created := s.createSavedFinalInvoice()

	_, err := s.service.UpdateInvoice(s.GetContext(), created.ID, s.newCreateRequest())
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestRemoveLineItem() {
	req := s.newCreateRequest()
	req.Items = append(req.Items, dto.LineItemRequest{
		ItemType: types.ItemTypeProduct, Name: "Gadget", Quantity: 1,
	})
	created, err := s.service.CreateInvoice(s.GetContext(), req)
	s.NoError(err)
	s.Len(created.Items, 2)

	gadget, found := lo.Find(created.Items, func(it *dto.LineItemResponse) bool { return it.Name == "Gadget" })
	s.True(found)

	resp, err := s.service.RemoveLineItem(s.GetContext(), created.ID, gadget.ID)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.True(decimal.NewFromInt(100).Equal(resp.Subtotal))
}

func (s *InvoiceServiceSuite) TestRemoveLineItemBackendFailureKeepsItem() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	itemID := created.Items[0].ID

	s.GetStores().LineItemRepo.DeleteFailures[itemID] = errors.New("delete refused")

	_, err = s.service.RemoveLineItem(s.GetContext(), created.ID, itemID)
	s.Error(err)

	// The item is still on the invoice; nothing was removed locally.
	stored, getErr := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.ID)
	s.NoError(getErr)
	s.Len(stored.LineItems, 1)
}

func (s *InvoiceServiceSuite) TestFinalizeAndConfirmPrint() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	finalized, err := s.service.FinalizeInvoice(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.LifecycleFinalPending, finalized.Invoice.LifecycleState)
	s.True(finalized.Invoice.IsFinal)
	s.False(finalized.Invoice.IsSavedFinal)
	s.Nil(finalized.Invoice.FinalInvoiceNumber)
	s.True(strings.HasPrefix(finalized.PrintSessionRef, "PRN-"))

	expectedNumber := s.testData.branch.FormatFinalNumber(1, time.Now())

	confirmed, err := s.service.ResolvePrint(s.GetContext(), created.ID, true)
	s.NoError(err)
	s.Equal(types.LifecycleFinalSaved, confirmed.LifecycleState)
	s.True(confirmed.IsFinal)
	s.True(confirmed.IsSavedFinal)
	s.NotNil(confirmed.FinalInvoiceNumber)
	s.Equal(expectedNumber, *confirmed.FinalInvoiceNumber)
}

func (s *InvoiceServiceSuite) TestCancelPrintReturnsToProforma() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	_, err = s.service.FinalizeInvoice(s.GetContext(), created.ID)
	s.NoError(err)

	cancelled, err := s.service.ResolvePrint(s.GetContext(), created.ID, false)
	s.NoError(err)
	s.Equal(types.LifecycleProforma, cancelled.LifecycleState)
	// No number was consumed from the branch sequence.
	s.Nil(cancelled.FinalInvoiceNumber)

	next, err := s.GetStores().BranchRepo.NextFinalInvoiceNumber(s.GetContext(), s.testData.branch.ID)
	s.NoError(err)
	s.True(strings.HasSuffix(next, "0001"), "sequence should still be at its first value, got %s", next)
}

func (s *InvoiceServiceSuite) TestConfirmPrintOnProformaDrawsNoNumber() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	// Confirm without finalizing first.
	_, err = s.service.ResolvePrint(s.GetContext(), created.ID, true)
	s.Error(err)
	s.True(ierr.IsIllegalTransition(err))

	next, err := s.GetStores().BranchRepo.NextFinalInvoiceNumber(s.GetContext(), s.testData.branch.ID)
	s.NoError(err)
	s.True(strings.HasSuffix(next, "0001"), "sequence should be untouched after an illegal confirm, got %s", next)
}

func (s *InvoiceServiceSuite) TestDoubleConfirmDrawsNoSecondNumber() {
	created := s.createSavedFinalInvoice()

	_, err := s.service.ResolvePrint(s.GetContext(), created.ID, true)
	s.Error(err)
	s.True(ierr.IsIllegalTransition(err))

	next, err := s.GetStores().BranchRepo.NextFinalInvoiceNumber(s.GetContext(), s.testData.branch.ID)
	s.NoError(err)
	s.True(strings.HasSuffix(next, "0002"), "only the first confirm should have drawn a number, got %s", next)
}

func (s *InvoiceServiceSuite) TestRevertToProformaKeepsFinalNumber() {
	created := s.createSavedFinalInvoice()

	reverted, err := s.service.RevertToProforma(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.LifecycleProforma, reverted.LifecycleState)
	s.NotNil(reverted.FinalInvoiceNumber)
}

func (s *InvoiceServiceSuite) TestDeleteInvoice() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteInvoice(s.GetContext(), created.ID))

	_, err = s.service.GetInvoice(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestDeleteSavedFinalInvoiceRejected() {
	created := s.createSavedFinalInvoice()

	err := s.service.DeleteInvoice(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestListInvoicesByView() {
	first, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	_, err = s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	_, err = s.service.FinalizeInvoice(s.GetContext(), first.ID)
	s.NoError(err)
	_, err = s.service.ResolvePrint(s.GetContext(), first.ID, true)
	s.NoError(err)

	proforma, err := s.service.ListInvoices(s.GetContext(), types.NewProformaInvoiceFilter())
	s.NoError(err)
	s.Equal(1, proforma.Total)
	s.Len(proforma.Items, 1)

	final, err := s.service.ListInvoices(s.GetContext(), types.NewFinalInvoiceFilter())
	s.NoError(err)
	s.Equal(1, final.Total)
	s.Equal(first.ID, final.Items[0].ID)
}

func (s *InvoiceServiceSuite) TestGetInvoiceNotFound() {
	_, err := s.service.GetInvoice(s.GetContext(), fmt.Sprintf("inv_%s", "missing"))
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) createSavedFinalInvoice() *dto.InvoiceResponse {
	created, err := s.service.CreateInvoice(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	_, err = s.service.FinalizeInvoice(s.GetContext(), created.ID)
	s.NoError(err)
	resp, err := s.service.ResolvePrint(s.GetContext(), created.ID, true)
	s.NoError(err)
	return resp
}
