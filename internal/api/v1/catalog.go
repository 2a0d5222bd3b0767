package v1

import (
	"net/http"

	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/service"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only reference data used to build
// invoices.
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *logger.Logger
}

func NewCatalogHandler(catalogService service.CatalogService, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	itemType := types.ItemType(c.Query("item_type"))
	if err := itemType.Validate(); err != nil {
		c.Error(err)
		return
	}

	items, err := h.catalogService.ListItems(c.Request.Context(), itemType)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) GetItemByName(c *gin.Context) {
	itemType := types.ItemType(c.Query("item_type"))
	if err := itemType.Validate(); err != nil {
		c.Error(err)
		return
	}
	name := c.Query("name")
	if name == "" {
		c.Error(ierr.NewError("name is required").Mark(ierr.ErrValidation))
		return
	}

	item, err := h.catalogService.GetItemByName(c.Request.Context(), itemType, name)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) ListTaxRates(c *gin.Context) {
	rates, err := h.catalogService.ListTaxRates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (h *CatalogHandler) ListClients(c *gin.Context) {
	clients, err := h.catalogService.ListClients(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *CatalogHandler) ListBranches(c *gin.Context) {
	branches, err := h.catalogService.ListBranches(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

func (h *CatalogHandler) ListBankAccounts(c *gin.Context) {
	accounts, err := h.catalogService.ListBankAccounts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}
