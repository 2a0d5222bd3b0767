package testutil

import (
	"context"
	"time"

	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds the concrete in-memory repositories so tests can both
// satisfy the repository interfaces and reach the failure injection
// knobs.
type Stores struct {
	InvoiceRepo     *InMemoryInvoiceStore
	LineItemRepo    *InMemoryLineItemStore
	NumberingRepo   *InMemoryNumberingStore
	CatalogRepo     *InMemoryCatalogStore
	TaxRateRepo     *InMemoryTaxRateStore
	ClientRepo      *InMemoryClientStore
	BranchRepo      *InMemoryBranchStore
	BankAccountRepo *InMemoryBankAccountStore
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	var err error
	s.config = config.GetDefaultConfig()
	s.logger, err = logger.NewLogger(s.config)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	lineItems := NewInMemoryLineItemStore()
	s.stores = Stores{
		LineItemRepo:    lineItems,
		InvoiceRepo:     NewInMemoryInvoiceStore(lineItems),
		NumberingRepo:   NewInMemoryNumberingStore(),
		CatalogRepo:     NewInMemoryCatalogStore(),
		TaxRateRepo:     NewInMemoryTaxRateStore(),
		ClientRepo:      NewInMemoryClientStore(),
		BranchRepo:      NewInMemoryBranchStore(),
		BankAccountRepo: NewInMemoryBankAccountStore(),
	}
}

// ClearStores clears all the in-memory stores
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.InvoiceRepo.Clear()
	s.stores.LineItemRepo.Clear()
	s.stores.NumberingRepo.Clear()
	s.stores.CatalogRepo.Clear()
	s.stores.TaxRateRepo.Clear()
	s.stores.ClientRepo.Clear()
	s.stores.BranchRepo.Clear()
	s.stores.BankAccountRepo.Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetStores returns the test stores
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetConfig returns the test config
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
