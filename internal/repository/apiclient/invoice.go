package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/domain/invoice"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/httpclient"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// invoiceWire mirrors the upstream invoice payload, including the legacy
// is_final/is_saved_final flag pair that the domain collapses into one
// lifecycle state.
type invoiceWire struct {
	ID                 string           `json:"id,omitempty"`
	InvoiceNumber      string           `json:"invoice_number"`
	FinalInvoiceNumber *string          `json:"final_invoice_number,omitempty"`
	InvoiceType        string           `json:"invoice_type"`
	Client             string           `json:"client"`
	BranchAddress      string           `json:"branch_address"`
	BankAccount        string           `json:"bank_account"`
	InvoiceDate        string           `json:"invoice_date"`
	DueDate            string           `json:"due_date"`
	CurrencyType       string           `json:"currency_type"`
	PaymentTerms       string           `json:"payment_terms"`
	TaxOption          string           `json:"tax_option"`
	TaxName            string           `json:"tax_name,omitempty"`
	TaxRate            *decimal.Decimal `json:"tax_rate,omitempty"`
	Subtotal           decimal.Decimal  `json:"subtotal"`
	Gst                decimal.Decimal  `json:"gst"`
	Discount           decimal.Decimal  `json:"discount"`
	Shipping           decimal.Decimal  `json:"shipping"`
	AmountPaid         decimal.Decimal  `json:"amount_paid"`
	TotalDue           decimal.Decimal  `json:"total_due"`
	IsFinal            bool             `json:"is_final"`
	IsSavedFinal       bool             `json:"is_saved_final"`
	Items              []*lineItemWire  `json:"items,omitempty"`
}

func toInvoiceWire(inv *invoice.Invoice) *invoiceWire {
	isFinal, isSavedFinal := inv.LifecycleState.Flags()
	return &invoiceWire{
		ID:                 inv.ID,
		InvoiceNumber:      inv.InvoiceNumber,
		FinalInvoiceNumber: inv.FinalInvoiceNumber,
		InvoiceType:        inv.InvoiceType.String(),
		Client:             inv.ClientID,
		BranchAddress:      inv.BranchID,
		BankAccount:        inv.BankAccountID,
		InvoiceDate:        inv.InvoiceDate.Format(dateLayout),
		DueDate:            inv.DueDate.Format(dateLayout),
		CurrencyType:       inv.Currency,
		PaymentTerms:       inv.PaymentTerms.String(),
		TaxOption:          inv.TaxOption.String(),
		TaxName:            inv.TaxName,
		TaxRate:            inv.TaxRate,
		Subtotal:           inv.Subtotal,
		Gst:                inv.TotalTax,
		Discount:           inv.Discount,
		Shipping:           inv.Shipping,
		AmountPaid:         inv.AmountPaid,
		TotalDue:           inv.TotalDue,
		IsFinal:            isFinal,
		IsSavedFinal:       isSavedFinal,
	}
}

func (w *invoiceWire) toDomain() (*invoice.Invoice, error) {
	state, err := types.FromLifecycleFlags(w.IsFinal, w.IsSavedFinal)
	if err != nil {
		return nil, err
	}

	invoiceDate, err := time.Parse(dateLayout, w.InvoiceDate)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Upstream invoice_date is malformed").
			Mark(ierr.ErrHTTPClient)
	}
	dueDate, err := time.Parse(dateLayout, w.DueDate)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Upstream due_date is malformed").
			Mark(ierr.ErrHTTPClient)
	}

	items := make([]*invoice.LineItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, it.toDomain(w.ID))
	}

	return &invoice.Invoice{
		ID:                 w.ID,
		InvoiceNumber:      w.InvoiceNumber,
		FinalInvoiceNumber: w.FinalInvoiceNumber,
		InvoiceType:        types.InvoiceType(w.InvoiceType),
		LifecycleState:     state,
		ClientID:           w.Client,
		BranchID:           w.BranchAddress,
		BankAccountID:      w.BankAccount,
		InvoiceDate:        invoiceDate,
		DueDate:            dueDate,
		Currency:           w.CurrencyType,
		PaymentTerms:       types.PaymentTerm(w.PaymentTerms),
		TaxOption:          types.TaxOption(w.TaxOption),
		TaxName:            w.TaxName,
		TaxRate:            w.TaxRate,
		Discount:           w.Discount,
		Shipping:           w.Shipping,
		AmountPaid:         w.AmountPaid,
		Subtotal:           w.Subtotal,
		TotalTax:           w.Gst,
		TotalDue:           w.TotalDue,
		LineItems:          items,
	}, nil
}

// InvoiceRepository implements invoice.Repository over the upstream API.
type InvoiceRepository struct {
	*restClient
}

func NewInvoiceRepository(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) invoice.Repository {
	return &InvoiceRepository{restClient: newClient(cfg, http, logger)}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	var created invoiceWire
	if err := r.do(ctx, http.MethodPost, r.url("/invoices/invoices/"), toInvoiceWire(inv), &created); err != nil {
		return err
	}
	inv.ID = created.ID
	if created.InvoiceNumber != "" {
		inv.InvoiceNumber = created.InvoiceNumber
	}
	return nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	var w invoiceWire
	if err := r.do(ctx, http.MethodGet, r.url("/invoices/invoices/%s/", id), nil, &w); err != nil {
		return nil, err
	}
	return w.toDomain()
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	return r.do(ctx, http.MethodPut, r.url("/invoices/invoices/%s/", inv.ID), toInvoiceWire(inv), nil)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, r.url("/invoices/invoices/%s/", id), nil, nil)
}

func (r *InvoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	var wires []*invoiceWire
	if err := r.do(ctx, http.MethodGet, r.url("/invoices/invoices/"), nil, &wires); err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(wires))
	for _, w := range wires {
		inv, err := w.toDomain()
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	if filter != nil {
		invoices = lo.Filter(invoices, func(inv *invoice.Invoice, _ int) bool {
			return matchesFilter(inv, filter)
		})
		if !filter.IsUnlimited() {
			start := filter.GetOffset()
			if start >= len(invoices) {
				return []*invoice.Invoice{}, nil
			}
			end := min(start+filter.GetLimit(), len(invoices))
			invoices = invoices[start:end]
		}
	}
	return invoices, nil
}

func (r *InvoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	unlimited := *filter
	unlimited.QueryFilter = types.NewNoLimitQueryFilter()
	invoices, err := r.List(ctx, &unlimited)
	if err != nil {
		return 0, err
	}
	return len(invoices), nil
}

func matchesFilter(inv *invoice.Invoice, filter *types.InvoiceFilter) bool {
	if filter.ClientID != "" && inv.ClientID != filter.ClientID {
		return false
	}
	if filter.InvoiceType != "" && inv.InvoiceType != filter.InvoiceType {
		return false
	}
	if len(filter.LifecycleStates) > 0 && !lo.Contains(filter.LifecycleStates, inv.LifecycleState) {
		return false
	}
	return true
}
