package service

import (
	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/domain/bankaccount"
	"github.com/billcraft/billcraft/internal/domain/branch"
	"github.com/billcraft/billcraft/internal/domain/catalog"
	"github.com/billcraft/billcraft/internal/domain/client"
	"github.com/billcraft/billcraft/internal/domain/invoice"
	"github.com/billcraft/billcraft/internal/domain/taxrate"
	"github.com/billcraft/billcraft/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	InvoiceRepo     invoice.Repository
	LineItemRepo    invoice.LineItemRepository
	NumberingRepo   invoice.NumberingRepository
	CatalogRepo     catalog.Repository
	TaxRateRepo     taxrate.Repository
	ClientRepo      client.Repository
	BranchRepo      branch.Repository
	BankAccountRepo bankaccount.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	invoiceRepo invoice.Repository,
	lineItemRepo invoice.LineItemRepository,
	numberingRepo invoice.NumberingRepository,
	catalogRepo catalog.Repository,
	taxRateRepo taxrate.Repository,
	clientRepo client.Repository,
	branchRepo branch.Repository,
	bankAccountRepo bankaccount.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:          logger,
		Config:          config,
		InvoiceRepo:     invoiceRepo,
		LineItemRepo:    lineItemRepo,
		NumberingRepo:   numberingRepo,
		CatalogRepo:     catalogRepo,
		TaxRateRepo:     taxRateRepo,
		ClientRepo:      clientRepo,
		BranchRepo:      branchRepo,
		BankAccountRepo: bankAccountRepo,
	}
}
