package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
	"github.com/brunovms/sellerboard/internal/money"
)

// Summary holds the portfolio-wide totals shown on the dashboard cards.
type Summary struct {
	Sales          decimal.Decimal
	Cost           decimal.Decimal
	Profit         decimal.Decimal
	PercentProfit  decimal.Decimal // 2 decimal places; 0 when sales are 0
	UnitsSold      int
	AverageTicket  decimal.Decimal
	CancelledSales decimal.Decimal
	CancelledUnits int
}

// Summarize computes the portfolio summary over a set of listings.
//
// Units sold counts every order, cancelled included; cancelled orders are
// otherwise excluded from sales, cost and profit and tracked in the
// cancelled totals. The average ticket divides sales by the net sold units
// and is 0 when that denominator is 0.
func Summarize(listings []catalog.Announcement) Summary {
	var s Summary

	for _, listing := range listings {
		for _, order := range listing.OrdersDetail {
			s.UnitsSold += order.Quantity

			if order.IsCancel {
				s.CancelledSales = s.CancelledSales.Add(order.TotalValue)
				s.CancelledUnits += order.Quantity
				continue
			}

			s.Sales = s.Sales.Add(order.TotalValue)

			orderCost := order.TotalCost.Add(order.ShippingPrice).Add(order.SaleFee)
			s.Cost = s.Cost.Add(orderCost)
			s.Profit = s.Profit.Add(order.TotalValue.Sub(orderCost))
		}
	}

	if net := s.UnitsSold - s.CancelledUnits; net != 0 {
		s.AverageTicket = s.Sales.Div(decimal.NewFromInt(int64(net)))
	}

	if pct, ok := money.Percent(s.Profit, s.Sales); ok {
		s.PercentProfit = money.Round2(pct)
	}

	return s
}
