// Package app builds profitability reports from listing pages.
package app

import (
	"context"
	"time"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
	profitApp "github.com/brunovms/sellerboard/business/profit/app"
	profit "github.com/brunovms/sellerboard/business/profit/domain"
)

// ListingRow pairs a listing with its computed rollup.
type ListingRow struct {
	Listing catalog.Announcement
	Rollup  profit.ListingRollup
}

// Report is a snapshot of one page plus the portfolio summary, ready for
// rendering to the console or an XLSX file.
type Report struct {
	GeneratedAt time.Time
	Page        int
	TotalPages  int
	Summary     profit.Summary
	Rows        []ListingRow
}

// Reporter renders a report somewhere. Write returns a human-readable
// destination (file path, "stdout") for the confirmation toast.
type Reporter interface {
	Write(ctx context.Context, report Report) (string, error)
}

// ReportService builds reports through the profit module so every surface
// shares the same aggregation.
type ReportService struct {
	profit *profitApp.ProfitService
}

// NewReportService creates a new ReportService.
func NewReportService(profit *profitApp.ProfitService) *ReportService {
	return &ReportService{profit: profit}
}

// Build assembles a report for the given page of listings.
func (s *ReportService) Build(page catalog.Page) Report {
	rows := make([]ListingRow, 0, len(page.Listings))
	for _, listing := range page.Listings {
		rows = append(rows, ListingRow{
			Listing: listing,
			Rollup:  s.profit.RollupListing(listing),
		})
	}

	return Report{
		GeneratedAt: time.Now(),
		Page:        page.Number,
		TotalPages:  page.TotalPages,
		Summary:     s.profit.Summarize(page.Listings),
		Rows:        rows,
	}
}
