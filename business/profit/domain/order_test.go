package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
)

func makeOrderLine(totalValue string, quantity int, saleFee, shippingDiscount, taxPercentage string) catalog.OrderLine {
	return catalog.OrderLine{
		Quantity:         quantity,
		TotalValue:       decimal.RequireFromString(totalValue),
		SaleFee:          decimal.RequireFromString(saleFee),
		ShippingDiscount: decimal.RequireFromString(shippingDiscount),
		TaxPercentage:    decimal.RequireFromString(taxPercentage),
	}
}

func TestMeasureOrder(t *testing.T) {
	tests := []struct {
		name            string
		order           catalog.OrderLine
		wantTotalCost   string
		wantUnitCost    string
		wantTax         string
		wantRevenue     string
		wantProfit      string
		wantMargin      string
		wantMarginValid bool
		wantROI         string
		wantROIValid    bool
	}{
		{
			name:            "plain_order_no_tax",
			order:           makeOrderLine("100", 2, "5", "1", "0"),
			wantTotalCost:   "6", // 5 + 1
			wantUnitCost:    "3", // 6 / 2
			wantTax:         "0",
			wantRevenue:     "100",
			wantProfit:      "94",
			wantMargin:      "94",
			wantMarginValid: true,
			wantROI:         "1566.7", // 94/6*100 = 1566.666...
			wantROIValid:    true,
		},
		{
			name:            "taxed_order",
			order:           makeOrderLine("200", 4, "10", "2", "15"),
			wantTotalCost:   "12",
			wantUnitCost:    "3",
			wantTax:         "30", // 15% of 200
			wantRevenue:     "200",
			wantProfit:      "188",
			wantMargin:      "94",
			wantMarginValid: true,
			wantROI:         "447.6", // 188/42*100 = 447.619... -> 447.6
			wantROIValid:    true,
		},
		{
			name:            "zero_quantity_unit_cost_zero",
			order:           makeOrderLine("100", 0, "5", "1", "0"),
			wantTotalCost:   "6",
			wantUnitCost:    "0",
			wantTax:         "0",
			wantRevenue:     "100",
			wantProfit:      "94",
			wantMargin:      "94",
			wantMarginValid: true,
			wantROI:         "1566.7",
			wantROIValid:    true,
		},
		{
			name:            "zero_revenue_margin_invalid",
			order:           makeOrderLine("0", 1, "5", "1", "0"),
			wantTotalCost:   "6",
			wantUnitCost:    "6",
			wantTax:         "0",
			wantRevenue:     "0",
			wantProfit:      "-6",
			wantMarginValid: false,
			wantROI:         "-100",
			wantROIValid:    true,
		},
		{
			name:            "free_order_roi_invalid",
			order:           makeOrderLine("100", 1, "0", "0", "0"),
			wantTotalCost:   "0",
			wantUnitCost:    "0",
			wantTax:         "0",
			wantRevenue:     "100",
			wantProfit:      "100",
			wantMargin:      "100",
			wantMarginValid: true,
			wantROIValid:    false,
		},
		{
			name:            "negative_tax_percentage_gated_to_zero",
			order:           makeOrderLine("100", 1, "5", "1", "-10"),
			wantTotalCost:   "6",
			wantUnitCost:    "6",
			wantTax:         "0",
			wantRevenue:     "100",
			wantProfit:      "94",
			wantMargin:      "94",
			wantMarginValid: true,
			wantROI:         "1566.7",
			wantROIValid:    true,
		},
		{
			name:            "margin_rounds_half_away_from_zero",
			order:           makeOrderLine("1000", 1, "876.5", "0", "0"),
			wantTotalCost:   "876.5",
			wantUnitCost:    "876.5",
			wantTax:         "0",
			wantRevenue:     "1000",
			wantProfit:      "123.5",
			wantMargin:      "12.4", // 12.35 -> 12.4
			wantMarginValid: true,
			wantROI:         "14.1", // 123.5/876.5*100 = 14.0901... -> 14.1
			wantROIValid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeasureOrder(tt.order)

			assertDecimal(t, "TotalCost", got.TotalCost, tt.wantTotalCost)
			assertDecimal(t, "UnitCost", got.UnitCost, tt.wantUnitCost)
			assertDecimal(t, "Tax", got.Tax, tt.wantTax)
			assertDecimal(t, "Revenue", got.Revenue, tt.wantRevenue)
			assertDecimal(t, "Profit", got.Profit, tt.wantProfit)

			assertPercent(t, "Margin", got.Margin, tt.wantMargin, tt.wantMarginValid)
			assertPercent(t, "ROI", got.ROI, tt.wantROI, tt.wantROIValid)
		})
	}
}

func TestMeasureOrderSameForGroupAndDetail(t *testing.T) {
	line := makeOrderLine("150", 3, "7.5", "2.5", "5")

	group := catalog.OrderGroup{OrderLine: line}
	detail := catalog.OrderDetail{OrderLine: line}

	fromGroup := MeasureOrder(group.OrderLine)
	fromDetail := MeasureOrder(detail.OrderLine)

	if !fromGroup.Profit.Equal(fromDetail.Profit) ||
		!fromGroup.TotalCost.Equal(fromDetail.TotalCost) ||
		!fromGroup.Tax.Equal(fromDetail.Tax) {
		t.Errorf("group and detail rows must share the same metrics: %+v vs %+v", fromGroup, fromDetail)
	}
}
