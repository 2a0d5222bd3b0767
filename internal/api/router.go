package api

import (
	v1 "github.com/billcraft/billcraft/internal/api/v1"
	"github.com/billcraft/billcraft/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Invoice *v1.InvoiceHandler
	Catalog *v1.CatalogHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Invoice routes
	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", handlers.Invoice.DeleteInvoice)
		invoices.DELETE("/:id/items/:item_id", handlers.Invoice.RemoveLineItem)
		invoices.POST("/:id/finalize", handlers.Invoice.FinalizeInvoice)
		invoices.POST("/:id/print", handlers.Invoice.ResolvePrint)
		invoices.POST("/:id/revert", handlers.Invoice.RevertToProforma)
	}

	// Reference data routes
	catalog := router.Group("/catalog")
	{
		catalog.GET("/items", handlers.Catalog.ListItems)
		catalog.GET("/items/lookup", handlers.Catalog.GetItemByName)
		catalog.GET("/tax-rates", handlers.Catalog.ListTaxRates)
		catalog.GET("/clients", handlers.Catalog.ListClients)
		catalog.GET("/branches", handlers.Catalog.ListBranches)
		catalog.GET("/bank-accounts", handlers.Catalog.ListBankAccounts)
	}
}
