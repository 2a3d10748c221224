package app

import (
	"context"

	"github.com/brunovms/sellerboard/business/catalog/domain"
)

// CatalogService coordinates listing page fetches for the presentation layer.
type CatalogService struct {
	fetcher ListingFetcher
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(fetcher ListingFetcher) *CatalogService {
	return &CatalogService{fetcher: fetcher}
}

// FetchPage retrieves one page of listings. The filter is normalized first
// so at most one criterion reaches the wire (name > sku > id).
func (s *CatalogService) FetchPage(ctx context.Context, page int, filter domain.Filter) (domain.Page, error) {
	return s.fetcher.FetchPage(ctx, page, NormalizeFilter(filter))
}

// PageSize returns the page size used for pagination.
func (s *CatalogService) PageSize() int {
	return s.fetcher.PageSize()
}

// HealthCheck reports whether the listing service is reachable.
func (s *CatalogService) HealthCheck(ctx context.Context) (bool, string) {
	if err := s.fetcher.Ping(ctx); err != nil {
		return false, err.Error()
	}
	return true, "listing service reachable"
}

// NormalizeFilter drops all but the highest-priority criterion. A search
// with every field blank yields the unfiltered paginated set.
func NormalizeFilter(f domain.Filter) domain.Filter {
	switch {
	case f.Name != "":
		return domain.Filter{Name: f.Name}
	case f.SKU != "":
		return domain.Filter{SKU: f.SKU}
	case f.AdsID != "":
		return domain.Filter{AdsID: f.AdsID}
	}
	return domain.Filter{}
}
