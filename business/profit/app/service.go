// Package app exposes the profitability aggregation as an application service.
package app

import (
	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
	"github.com/brunovms/sellerboard/business/profit/domain"
)

// ProfitService is the single entry point for profitability metrics, shared
// by the TUI, the console report and the XLSX export so the aggregation
// logic exists exactly once.
type ProfitService struct{}

// NewProfitService creates a new ProfitService.
func NewProfitService() *ProfitService {
	return &ProfitService{}
}

// Summarize computes the portfolio summary over a set of listings.
func (s *ProfitService) Summarize(listings []catalog.Announcement) domain.Summary {
	return domain.Summarize(listings)
}

// RollupListing computes the row metrics for one listing.
func (s *ProfitService) RollupListing(listing catalog.Announcement) domain.ListingRollup {
	return domain.RollupListing(listing)
}

// MeasureOrder computes the metrics for one order line.
func (s *ProfitService) MeasureOrder(order catalog.OrderLine) domain.OrderMetrics {
	return domain.MeasureOrder(order)
}
