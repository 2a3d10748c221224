// Package catalog implements the catalog bounded context for listing data.
package catalog

import (
	"context"

	"github.com/brunovms/sellerboard/business/catalog/app"
	catalogDI "github.com/brunovms/sellerboard/business/catalog/di"
	"github.com/brunovms/sellerboard/business/catalog/infra/announcements"
	"github.com/brunovms/sellerboard/internal/config"
	"github.com/brunovms/sellerboard/internal/di"
	"github.com/brunovms/sellerboard/internal/logger"
	"github.com/brunovms/sellerboard/internal/monolith"
)

// Module implements the catalog bounded context.
type Module struct{}

// RegisterServices registers all catalog services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Register ListingFetcher - private dependency
	di.RegisterToken(c, catalogDI.ListingFetcher, func(sr di.ServiceRegistry) app.ListingFetcher {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		clientCfg := announcements.Config{
			BaseURL:           cfg.Announcements.BaseURL,
			PageSize:          cfg.Announcements.PageSize,
			RequestTimeout:    cfg.Announcements.RequestTimeout,
			RequestsPerMinute: cfg.Announcements.RequestsPerMinute,
		}

		client, err := announcements.NewClient(clientCfg, log)
		if err != nil {
			panic("failed to create announcements client: " + err.Error())
		}
		return client
	})

	// Register CatalogService (public - exposed to other modules)
	di.RegisterToken(c, catalogDI.CatalogService, func(sr di.ServiceRegistry) *app.CatalogService {
		fetcher := catalogDI.GetListingFetcher(sr)
		return app.NewCatalogService(fetcher)
	})

	return nil
}

// Startup initializes the catalog module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()

	// Warm the service eagerly so misconfiguration fails at startup, not on
	// the first keystroke.
	catalogDI.GetCatalogService(mono.Services())

	log.Info(ctx, "catalog module started")
	return nil
}
