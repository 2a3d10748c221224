// Package app contains application services and port definitions for the catalog context.
package app

import (
	"context"

	"github.com/brunovms/sellerboard/business/catalog/domain"
)

// ListingFetcher defines the interface to the external listing service.
type ListingFetcher interface {
	// FetchPage retrieves one 1-based page of listings with an optional filter.
	FetchPage(ctx context.Context, page int, filter domain.Filter) (domain.Page, error)

	// Ping verifies the service is reachable.
	Ping(ctx context.Context) error

	// PageSize returns the fixed page size used for pagination.
	PageSize() int
}
