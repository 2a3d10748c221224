// Package domain implements profitability aggregation over catalog listings.
//
// All arithmetic is pure and decimal-based. Derived percentages carry a
// validity flag instead of NaN when the denominator is zero.
package domain

import (
	"github.com/shopspring/decimal"

	"github.com/brunovms/sellerboard/internal/money"
)

var hundred = decimal.NewFromInt(100)

// Percent is a percentage rounded to 1 decimal place. Valid is false when
// the denominator was zero and no meaningful value exists.
type Percent struct {
	Value decimal.Decimal
	Valid bool
}

// percentOf computes part/whole*100 rounded to 1 decimal place,
// half away from zero.
func percentOf(part, whole decimal.Decimal) Percent {
	pct, ok := money.Percent(part, whole)
	if !ok {
		return Percent{}
	}
	return Percent{Value: money.Round1(pct), Valid: true}
}
