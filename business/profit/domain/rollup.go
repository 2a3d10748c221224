package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
)

// ListingRollup holds the per-listing row metrics, computed over the
// listing's non-cancelled detail orders.
type ListingRollup struct {
	SaleFee          decimal.Decimal
	ShippingPaid     decimal.Decimal
	ShippingDiscount decimal.Decimal
	UnitCost         decimal.Decimal
	TotalCost        decimal.Decimal
	Tax              decimal.Decimal
	Revenue          decimal.Decimal
	Profit           decimal.Decimal
	Margin           Percent
	ROI              Percent
}

// RollupListing computes the row metrics for one listing.
//
// UnitCost accumulates each order's (fee + shipping discount) divided by
// the listing quantity, term by term, rather than dividing the sum once.
// Profit charges tax against revenue even though Tax and TotalCost are
// reported alongside; the formula intentionally differs from the per-order
// one in MeasureOrder and the two must not be unified without a product
// decision.
func RollupListing(listing catalog.Announcement) ListingRollup {
	var r ListingRollup

	quantity := decimal.NewFromInt(int64(listing.Quantity))

	for _, order := range listing.OrdersDetail {
		if order.IsCancel {
			continue
		}

		r.SaleFee = r.SaleFee.Add(order.SaleFee)
		r.ShippingPaid = r.ShippingPaid.Add(order.ShippingPayed)
		r.ShippingDiscount = r.ShippingDiscount.Add(order.ShippingDiscount)

		feeAndDiscount := order.SaleFee.Add(order.ShippingDiscount)
		if listing.Quantity > 0 {
			r.UnitCost = r.UnitCost.Add(feeAndDiscount.Div(quantity))
		}
		r.TotalCost = r.TotalCost.Add(feeAndDiscount)

		orderTax := order.TaxPercentage.Div(hundred).Mul(order.TotalValue)
		r.Tax = r.Tax.Add(orderTax)

		r.Revenue = r.Revenue.Add(order.TotalValue)

		orderCost := order.SaleFee.
			Add(order.ShippingPrice).
			Sub(order.ShippingPayed).
			Add(orderTax)
		r.Profit = r.Profit.Add(order.TotalValue.Sub(orderCost))
	}

	r.Margin = percentOf(r.Profit, r.Revenue)
	r.ROI = percentOf(r.Profit, r.TotalCost.Add(r.Tax))

	return r
}
