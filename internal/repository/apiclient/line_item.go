package apiclient

import (
	"context"
	"net/http"

	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/domain/invoice"
	"github.com/billcraft/billcraft/internal/httpclient"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// lineItemWire mirrors the upstream invoice item payload.
type lineItemWire struct {
	ID       string          `json:"id,omitempty"`
	Invoice  string          `json:"invoice"`
	ItemType string          `json:"item_type"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Total    decimal.Decimal `json:"total"`
	TotalGst decimal.Decimal `json:"total_gst"`
}

func toLineItemWire(item *invoice.LineItem) *lineItemWire {
	return &lineItemWire{
		ID:       item.ID,
		Invoice:  item.InvoiceID,
		ItemType: item.ItemType.String(),
		Name:     item.Name,
		Quantity: item.Quantity,
		UnitCost: item.UnitCost,
		Total:    item.Total,
		TotalGst: item.TaxAmount,
	}
}

func (w *lineItemWire) toDomain(invoiceID string) *invoice.LineItem {
	if invoiceID == "" {
		invoiceID = w.Invoice
	}
	return &invoice.LineItem{
		ID:        w.ID,
		InvoiceID: invoiceID,
		ItemType:  types.ItemType(w.ItemType),
		Name:      w.Name,
		Quantity:  w.Quantity,
		UnitCost:  w.UnitCost,
		TaxAmount: w.TotalGst,
		Total:     w.Total,
	}
}

// LineItemRepository implements invoice.LineItemRepository over the
// upstream API. Each call is one independent item operation.
type LineItemRepository struct {
	*restClient
}

func NewLineItemRepository(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) invoice.LineItemRepository {
	return &LineItemRepository{restClient: newClient(cfg, http, logger)}
}

func (r *LineItemRepository) Create(ctx context.Context, item *invoice.LineItem) error {
	var created lineItemWire
	if err := r.do(ctx, http.MethodPost, r.url("/invoices/invoice-items/"), toLineItemWire(item), &created); err != nil {
		return err
	}
	item.ID = created.ID
	return nil
}

func (r *LineItemRepository) Update(ctx context.Context, item *invoice.LineItem) error {
	return r.do(ctx, http.MethodPut, r.url("/invoices/invoice-items/%s/", item.ID), toLineItemWire(item), nil)
}

func (r *LineItemRepository) Delete(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, r.url("/invoices/invoice-items/%s/", id), nil, nil)
}

func (r *LineItemRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*invoice.LineItem, error) {
	var w invoiceWire
	if err := r.do(ctx, http.MethodGet, r.url("/invoices/invoices/%s/", invoiceID), nil, &w); err != nil {
		return nil, err
	}
	items := make([]*invoice.LineItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, it.toDomain(invoiceID))
	}
	return items, nil
}
