// Package domain contains the catalog entities: listings and their orders.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine holds the financial fields shared by detail and group rows.
// Monetary values are decimals; the wire layer parses string-typed fields
// once at ingestion.
type OrderLine struct {
	OrderID          string
	SKU              string
	Name             string
	Value            decimal.Decimal
	Quantity         int
	TotalValue       decimal.Decimal
	SaleFee          decimal.Decimal
	ShippingPrice    decimal.Decimal
	ShippingPayed    decimal.Decimal
	ShippingDiscount decimal.Decimal
	Cost             decimal.Decimal
	TotalCost        decimal.Decimal
	Tax              decimal.Decimal
	Income           decimal.Decimal
	TaxPercentage    decimal.Decimal
	ProfitValue      decimal.Decimal
	ProfitSale       decimal.Decimal
	ProfitItem       decimal.Decimal
}

// OrderDetail is one individual order under a listing.
type OrderDetail struct {
	OrderLine

	Date         time.Time
	LogisticType string
	IsCancel     bool
}

// OrderGroup is a set of orders collapsed by a shared price point.
type OrderGroup struct {
	OrderLine
}

// Announcement is one seller listing aggregating all orders for a SKU/ad.
type Announcement struct {
	AdsID            string
	Name             string
	SKU              string
	Modality         string
	Value            decimal.Decimal
	Quantity         int
	TotalValue       decimal.Decimal
	SaleFee          decimal.Decimal
	ShippingPrice    decimal.Decimal
	ShippingPayed    decimal.Decimal
	ShippingDiscount decimal.Decimal
	Cost             decimal.Decimal
	TotalCost        decimal.Decimal
	Tax              decimal.Decimal
	Income           decimal.Decimal
	ProfitValue      decimal.Decimal
	ProfitSale       decimal.Decimal
	ProfitItem       decimal.Decimal
	IsRegistered     bool
	OrdersDetail     []OrderDetail
	OrdersGroup      []OrderGroup
}
