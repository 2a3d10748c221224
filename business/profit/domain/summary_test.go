package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
)

// Helper to build an order detail with the financial fields the summary reads.
func makeOrder(totalValue string, quantity int, saleFee, shippingPrice, totalCost string, cancel bool) catalog.OrderDetail {
	return catalog.OrderDetail{
		OrderLine: catalog.OrderLine{
			Quantity:      quantity,
			TotalValue:    decimal.RequireFromString(totalValue),
			SaleFee:       decimal.RequireFromString(saleFee),
			ShippingPrice: decimal.RequireFromString(shippingPrice),
			TotalCost:     decimal.RequireFromString(totalCost),
		},
		IsCancel: cancel,
	}
}

func makeListing(orders ...catalog.OrderDetail) catalog.Announcement {
	return catalog.Announcement{
		AdsID:        "MLB123",
		OrdersDetail: orders,
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name               string
		listings           []catalog.Announcement
		wantSales          string
		wantCost           string
		wantProfit         string
		wantPercentProfit  string
		wantUnitsSold      int
		wantAverageTicket  string
		wantCancelledSales string
		wantCancelledUnits int
	}{
		{
			name:               "empty_input_all_zero",
			listings:           nil,
			wantSales:          "0",
			wantCost:           "0",
			wantProfit:         "0",
			wantPercentProfit:  "0",
			wantUnitsSold:      0,
			wantAverageTicket:  "0",
			wantCancelledSales: "0",
			wantCancelledUnits: 0,
		},
		{
			name:               "listings_with_no_orders_all_zero",
			listings:           []catalog.Announcement{makeListing(), makeListing()},
			wantSales:          "0",
			wantCost:           "0",
			wantProfit:         "0",
			wantPercentProfit:  "0",
			wantUnitsSold:      0,
			wantAverageTicket:  "0",
			wantCancelledSales: "0",
			wantCancelledUnits: 0,
		},
		{
			name: "single_order",
			listings: []catalog.Announcement{
				makeListing(makeOrder("100", 1, "5", "3", "90", false)),
			},
			wantSales:          "100",
			wantCost:           "98", // 90 + 3 + 5
			wantProfit:         "2",
			wantPercentProfit:  "2", // (2/100)*100
			wantUnitsSold:      1,
			wantAverageTicket:  "100",
			wantCancelledSales: "0",
			wantCancelledUnits: 0,
		},
		{
			name: "cancelled_order_only_tracked_separately",
			listings: []catalog.Announcement{
				makeListing(makeOrder("50", 2, "1", "1", "40", true)),
			},
			wantSales:          "0",
			wantCost:           "0",
			wantProfit:         "0",
			wantPercentProfit:  "0",
			wantUnitsSold:      2, // cancelled units still count as sold units
			wantAverageTicket:  "0",
			wantCancelledSales: "50",
			wantCancelledUnits: 2,
		},
		{
			name: "mixed_orders_average_ticket_excludes_cancelled",
			listings: []catalog.Announcement{
				makeListing(
					makeOrder("100", 1, "5", "3", "90", false),
					makeOrder("200", 3, "10", "5", "150", false),
				),
				makeListing(
					makeOrder("50", 2, "1", "1", "40", true),
				),
			},
			wantSales:          "300",
			wantCost:           "263",  // 98 + 165
			wantProfit:         "37",   // 2 + 35
			wantPercentProfit:  "12.33", // (37/300)*100 = 12.333... -> 12.33
			wantUnitsSold:      6,
			wantAverageTicket:  "75", // 300 / (6 - 2)
			wantCancelledSales: "50",
			wantCancelledUnits: 2,
		},
		{
			name: "all_cancelled_zero_denominator_gives_zero_ticket",
			listings: []catalog.Announcement{
				makeListing(
					makeOrder("50", 2, "1", "1", "40", true),
					makeOrder("80", 1, "1", "1", "60", true),
				),
			},
			wantSales:          "0",
			wantCost:           "0",
			wantProfit:         "0",
			wantPercentProfit:  "0",
			wantUnitsSold:      3,
			wantAverageTicket:  "0",
			wantCancelledSales: "130",
			wantCancelledUnits: 3,
		},
		{
			name: "percent_profit_rounds_to_two_decimals",
			listings: []catalog.Announcement{
				// profit = 300 - (250+20+10) = 20; 20/300*100 = 6.666... -> 6.67
				makeListing(makeOrder("300", 1, "10", "20", "250", false)),
			},
			wantSales:          "300",
			wantCost:           "280",
			wantProfit:         "20",
			wantPercentProfit:  "6.67",
			wantUnitsSold:      1,
			wantAverageTicket:  "300",
			wantCancelledSales: "0",
			wantCancelledUnits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.listings)

			assertDecimal(t, "Sales", got.Sales, tt.wantSales)
			assertDecimal(t, "Cost", got.Cost, tt.wantCost)
			assertDecimal(t, "Profit", got.Profit, tt.wantProfit)
			assertDecimal(t, "PercentProfit", got.PercentProfit, tt.wantPercentProfit)
			assertDecimal(t, "AverageTicket", got.AverageTicket, tt.wantAverageTicket)
			assertDecimal(t, "CancelledSales", got.CancelledSales, tt.wantCancelledSales)

			if got.UnitsSold != tt.wantUnitsSold {
				t.Errorf("UnitsSold = %d, want %d", got.UnitsSold, tt.wantUnitsSold)
			}
			if got.CancelledUnits != tt.wantCancelledUnits {
				t.Errorf("CancelledUnits = %d, want %d", got.CancelledUnits, tt.wantCancelledUnits)
			}
		})
	}
}

func TestSummarizeAverageTicketProperty(t *testing.T) {
	// average_ticket = sales / (units_sold - cancelled_units) must hold for
	// any mix where the denominator is nonzero.
	listings := []catalog.Announcement{
		makeListing(
			makeOrder("120", 2, "5", "3", "90", false),
			makeOrder("60", 1, "2", "2", "40", false),
			makeOrder("999", 4, "1", "1", "1", true),
		),
	}

	got := Summarize(listings)

	net := got.UnitsSold - got.CancelledUnits
	if net == 0 {
		t.Fatalf("expected nonzero net units, got 0")
	}

	want := got.Sales.Div(decimal.NewFromInt(int64(net)))
	if !got.AverageTicket.Equal(want) {
		t.Errorf("AverageTicket = %s, want %s", got.AverageTicket, want)
	}
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	w := decimal.RequireFromString(want)
	if !got.Equal(w) {
		t.Errorf("%s = %s, want %s", field, got, w)
	}
}
