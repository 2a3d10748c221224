package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
)

// OrderMetrics holds the expanded-row metrics for a single order, identical
// for grouped and detailed rows.
type OrderMetrics struct {
	TotalCost decimal.Decimal
	UnitCost  decimal.Decimal
	Tax       decimal.Decimal
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
	Margin    Percent
	ROI       Percent
}

// MeasureOrder computes the metrics for one order line. Tax only applies
// when the percentage is positive; unit cost is 0 for zero-quantity lines.
func MeasureOrder(order catalog.OrderLine) OrderMetrics {
	var m OrderMetrics

	m.TotalCost = order.SaleFee.Add(order.ShippingDiscount)

	if order.Quantity > 0 {
		m.UnitCost = m.TotalCost.Div(decimal.NewFromInt(int64(order.Quantity)))
	}

	if order.TaxPercentage.IsPositive() {
		m.Tax = order.TaxPercentage.Div(hundred).Mul(order.TotalValue)
	}

	m.Revenue = order.TotalValue
	m.Profit = order.TotalValue.Sub(m.TotalCost)

	m.Margin = percentOf(m.Profit, m.Revenue)
	m.ROI = percentOf(m.Profit, m.TotalCost.Add(m.Tax))

	return m
}
