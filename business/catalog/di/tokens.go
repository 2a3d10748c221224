// Package di contains dependency injection tokens for the catalog context.
package di

import (
	"github.com/brunovms/sellerboard/business/catalog/app"
	"github.com/brunovms/sellerboard/internal/di"
)

// Public service tokens - exposed to other modules
var (
	CatalogService = di.NewToken[*app.CatalogService]("catalog.CatalogService")
)

// Private dependency tokens - internal to catalog module
var (
	ListingFetcher = di.NewToken[app.ListingFetcher]("catalog:listingFetcher")
)

// Helper functions for type-safe access
func GetCatalogService(c di.ServiceRegistry) *app.CatalogService {
	return di.GetToken(c, CatalogService)
}

func GetListingFetcher(c di.ServiceRegistry) app.ListingFetcher {
	return di.GetToken(c, ListingFetcher)
}
