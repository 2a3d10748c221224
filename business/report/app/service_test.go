package app

import (
	"testing"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
	profitApp "github.com/brunovms/sellerboard/business/profit/app"
	"github.com/brunovms/sellerboard/internal/money"
)

func TestBuild(t *testing.T) {
	svc := NewReportService(profitApp.NewProfitService())

	listing := catalog.Announcement{
		AdsID:    "MLB1",
		Name:     "Carregador Turbo",
		Quantity: 2,
		OrdersDetail: []catalog.OrderDetail{
			{OrderLine: catalog.OrderLine{
				Quantity:   1,
				TotalValue: money.MustParse("100"),
				TotalCost:  money.MustParse("60"),
				SaleFee:    money.MustParse("10"),
			}},
		},
	}

	page := catalog.Page{
		Listings:   []catalog.Announcement{listing},
		Number:     2,
		TotalCount: 12,
		TotalPages: 3,
	}

	report := svc.Build(page)

	if report.Page != 2 || report.TotalPages != 3 {
		t.Errorf("Page/TotalPages = %d/%d, want 2/3", report.Page, report.TotalPages)
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
	if len(report.Rows) != 1 {
		t.Fatalf("Rows = %d, want 1", len(report.Rows))
	}
	if report.Rows[0].Listing.AdsID != "MLB1" {
		t.Errorf("row listing = %q, want MLB1", report.Rows[0].Listing.AdsID)
	}
	if !report.Summary.Sales.Equal(money.MustParse("100")) {
		t.Errorf("Summary.Sales = %s, want 100", report.Summary.Sales)
	}
	if report.Summary.UnitsSold != 1 {
		t.Errorf("Summary.UnitsSold = %d, want 1", report.Summary.UnitsSold)
	}
}

func TestBuildEmptyPage(t *testing.T) {
	svc := NewReportService(profitApp.NewProfitService())

	report := svc.Build(catalog.Page{Number: 1})
	if len(report.Rows) != 0 {
		t.Errorf("Rows = %d, want 0", len(report.Rows))
	}
	if !report.Summary.Sales.IsZero() {
		t.Errorf("Summary.Sales = %s, want 0", report.Summary.Sales)
	}
}
