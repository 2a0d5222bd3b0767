package apiclient

import (
	"context"
	"net/http"

	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/domain/catalog"
	"github.com/billcraft/billcraft/internal/domain/taxrate"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/httpclient"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

type catalogItemWire struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// CatalogRepository implements catalog.Repository over the upstream
// product and service endpoints. Failures are marked as external lookup
// errors: already-loaded invoice data keeps working, but new item
// additions that need a lookup must be refused by the caller.
type CatalogRepository struct {
	*restClient
}

func NewCatalogRepository(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) catalog.Repository {
	return &CatalogRepository{restClient: newClient(cfg, http, logger)}
}

func (r *CatalogRepository) path(itemType types.ItemType) string {
	if itemType == types.ItemTypeService {
		return "/services/services/"
	}
	return "/products/products/"
}

func (r *CatalogRepository) List(ctx context.Context, itemType types.ItemType) ([]*catalog.Item, error) {
	if err := itemType.Validate(); err != nil {
		return nil, err
	}

	var wires []*catalogItemWire
	if err := r.do(ctx, http.MethodGet, r.url(r.path(itemType)), nil, &wires); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("The %s catalog is unavailable", itemType).
			Mark(ierr.ErrExternalLookup)
	}

	items := make([]*catalog.Item, 0, len(wires))
	for _, w := range wires {
		items = append(items, &catalog.Item{
			ID:       w.ID,
			Name:     w.Name,
			Type:     itemType,
			UnitCost: w.UnitCost,
		})
	}
	return items, nil
}

func (r *CatalogRepository) GetByName(ctx context.Context, itemType types.ItemType, name string) (*catalog.Item, error) {
	items, err := r.List(ctx, itemType)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, ierr.NewError("catalog item not found").
		WithHintf("No %s named %q exists in the catalog", itemType, name).
		WithReportableDetails(map[string]any{
			"item_type": itemType,
			"name":      name,
		}).
		Mark(ierr.ErrNotFound)
}

type taxRateWire struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
}

// TaxRateRepository implements taxrate.Repository over the upstream API.
type TaxRateRepository struct {
	*restClient
}

func NewTaxRateRepository(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) taxrate.Repository {
	return &TaxRateRepository{restClient: newClient(cfg, http, logger)}
}

func (r *TaxRateRepository) Get(ctx context.Context, id string) (*taxrate.TaxRate, error) {
	var w taxRateWire
	if err := r.do(ctx, http.MethodGet, r.url("/taxes/taxes/%s/", id), nil, &w); err != nil {
		return nil, err
	}
	return &taxrate.TaxRate{ID: w.ID, Name: w.Name, Percentage: w.Percentage}, nil
}

func (r *TaxRateRepository) List(ctx context.Context) ([]*taxrate.TaxRate, error) {
	var wires []*taxRateWire
	if err := r.do(ctx, http.MethodGet, r.url("/taxes/taxes/"), nil, &wires); err != nil {
		return nil, ierr.WithError(err).
			WithHint("The tax rate catalog is unavailable").
			Mark(ierr.ErrExternalLookup)
	}

	rates := make([]*taxrate.TaxRate, 0, len(wires))
	for _, w := range wires {
		rates = append(rates, &taxrate.TaxRate{ID: w.ID, Name: w.Name, Percentage: w.Percentage})
	}
	return rates, nil
}
