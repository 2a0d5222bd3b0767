package main

import (
	"context"
	"time"

	"github.com/billcraft/billcraft/internal/api"
	v1 "github.com/billcraft/billcraft/internal/api/v1"
	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/httpclient"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/repository/apiclient"
	"github.com/billcraft/billcraft/internal/service"
	"github.com/billcraft/billcraft/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// HTTP Client
			httpclient.NewDefaultClient,

			// Repositories
			apiclient.NewInvoiceRepository,
			apiclient.NewLineItemRepository,
			apiclient.NewNumberingRepository,
			apiclient.NewCatalogRepository,
			apiclient.NewTaxRateRepository,
			apiclient.NewClientRepository,
			apiclient.NewBranchRepository,
			apiclient.NewBankAccountRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewInvoiceService,
			service.NewCatalogService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	invoiceService service.InvoiceService,
	catalogService service.CatalogService,
) api.Handlers {
	return api.Handlers{
		Invoice: v1.NewInvoiceHandler(invoiceService, logger),
		Catalog: v1.NewCatalogHandler(catalogService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
