package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/domain/bankaccount"
	"github.com/billcraft/billcraft/internal/domain/branch"
	"github.com/billcraft/billcraft/internal/domain/client"
	"github.com/billcraft/billcraft/internal/domain/invoice"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/httpclient"
	"github.com/billcraft/billcraft/internal/logger"
)

// ClientRepository implements client.Repository over the upstream API.
type ClientRepository struct {
	*restClient
}

func NewClientRepository(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) client.Repository {
	return &ClientRepository{restClient: newClient(cfg, http, logger)}
}

func (r *ClientRepository) Get(ctx context.Context, id string) (*client.Client, error) {
	var c client.Client
	if err := r.do(ctx, http.MethodGet, r.url("/clients/clients/%s/", id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	var clients []*client.Client
	if err := r.do(ctx, http.MethodGet, r.url("/clients/clients/"), nil, &clients); err != nil {
		return nil, ierr.WithError(err).
			WithHint("The client directory is unavailable").
			Mark(ierr.ErrExternalLookup)
	}
	return clients, nil
}

// BranchRepository implements branch.Repository over the upstream API.
type BranchRepository struct {
	*restClient
}

func NewBranchRepository(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) branch.Repository {
	return &BranchRepository{restClient: newClient(cfg, http, logger)}
}

func (r *BranchRepository) Get(ctx context.Context, id string) (*branch.Branch, error) {
	var b branch.Branch
	if err := r.do(ctx, http.MethodGet, r.url("/branches/branches/%s/", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) List(ctx context.Context) ([]*branch.Branch, error) {
	var branches []*branch.Branch
	if err := r.do(ctx, http.MethodGet, r.url("/branches/branches/"), nil, &branches); err != nil {
		return nil, ierr.WithError(err).
			WithHint("The branch directory is unavailable").
			Mark(ierr.ErrExternalLookup)
	}
	return branches, nil
}

func (r *BranchRepository) NextFinalInvoiceNumber(ctx context.Context, branchID string) (string, error) {
	var out struct {
		FinalInvoiceNumber string `json:"final_invoice_number"`
	}
	err := r.do(ctx, http.MethodPost, r.url("/branches/branches/%s/next-invoice-number/", branchID), nil, &out)
	if err != nil {
		return "", err
	}
	return out.FinalInvoiceNumber, nil
}

// BankAccountRepository implements bankaccount.Repository over the
// upstream API.
type BankAccountRepository struct {
	*restClient
}

func NewBankAccountRepository(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) bankaccount.Repository {
	return &BankAccountRepository{restClient: newClient(cfg, http, logger)}
}

func (r *BankAccountRepository) Get(ctx context.Context, id string) (*bankaccount.BankAccount, error) {
	var a bankaccount.BankAccount
	if err := r.do(ctx, http.MethodGet, r.url("/banks/accounts/%s/", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *BankAccountRepository) List(ctx context.Context) ([]*bankaccount.BankAccount, error) {
	var accounts []*bankaccount.BankAccount
	if err := r.do(ctx, http.MethodGet, r.url("/banks/accounts/"), nil, &accounts); err != nil {
		return nil, ierr.WithError(err).
			WithHint("The bank account directory is unavailable").
			Mark(ierr.ErrExternalLookup)
	}
	return accounts, nil
}

// NumberingRepository implements invoice.NumberingRepository by asking
// the upstream API for the last issued proforma number and advancing it.
type NumberingRepository struct {
	*restClient
	prefix       string
	suffixLength int
}

func NewNumberingRepository(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) invoice.NumberingRepository {
	return &NumberingRepository{
		restClient:   newClient(cfg, http, logger),
		prefix:       cfg.Invoice.NumberPrefix,
		suffixLength: cfg.Invoice.NumberSuffixLength,
	}
}

func (r *NumberingRepository) NextProformaNumber(ctx context.Context) (string, error) {
	var out struct {
		LastSequence int64 `json:"last_sequence"`
	}
	if err := r.do(ctx, http.MethodPost, r.url("/invoices/invoices/next-number/"), nil, &out); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%0*d", r.prefix, r.suffixLength, out.LastSequence), nil
}
