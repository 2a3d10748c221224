// Package announcements implements the listing service HTTP client.
package announcements

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brunovms/sellerboard/business/catalog/domain"
	"github.com/brunovms/sellerboard/internal/logger"
	"github.com/brunovms/sellerboard/internal/money"
)

// orderLineMessage holds the financial fields shared by detail and group
// order records. The service mixes string-encoded and numeric JSON values;
// numeric ones decode through json.Number so no precision is lost before the
// decimal conversion.
type orderLineMessage struct {
	OrderID          string      `json:"order_id"`
	SKU              string      `json:"sku"`
	Name             string      `json:"name"`
	Value            string      `json:"value"`
	Quantity         int         `json:"quantity"`
	TotalValue       json.Number `json:"total_value"`
	SaleFee          string      `json:"sale_fee"`
	ShippingPrice    string      `json:"shipping_price"`
	ShippingPayed    string      `json:"shipping_payed"`
	ShippingDiscount json.Number `json:"shipping_discount"`
	Cost             json.Number `json:"cost"`
	TotalCost        json.Number `json:"total_cost"`
	Tax              json.Number `json:"tax"`
	Income           json.Number `json:"income"`
	TaxPercentage    json.Number `json:"tax_percentage"`
	ProfitValue      json.Number `json:"profit_value"`
	ProfitSale       json.Number `json:"profit_sale"`
	ProfitItem       json.Number `json:"profit_item"`
}

// orderDetailMessage is one individual order on the wire.
type orderDetailMessage struct {
	orderLineMessage

	Date         string `json:"date"`
	LogisticType string `json:"logistic_type"`
	IsCancel     bool   `json:"is_cancel"`
}

// orderGroupMessage is one collapsed order group on the wire.
type orderGroupMessage struct {
	orderLineMessage
}

// announcementMessage is one listing record on the wire.
type announcementMessage struct {
	AdsID            string               `json:"ads_id"`
	Name             string               `json:"name"`
	SKU              string               `json:"sku"`
	Modality         string               `json:"modality"`
	Value            string               `json:"value"`
	Quantity         int                  `json:"quantity"`
	TotalValue       json.Number          `json:"total_value"`
	SaleFee          string               `json:"sale_fee"`
	ShippingPrice    string               `json:"shipping_price"`
	ShippingPayed    string               `json:"shipping_payed"`
	ShippingDiscount json.Number          `json:"shipping_discount"`
	Cost             json.Number          `json:"cost"`
	TotalCost        json.Number          `json:"total_cost"`
	Tax              json.Number          `json:"tax"`
	Income           json.Number          `json:"income"`
	ProfitValue      json.Number          `json:"profit_value"`
	ProfitSale       json.Number          `json:"profit_sale"`
	ProfitItem       json.Number          `json:"profit_item"`
	IsRegistered     bool                 `json:"is_registered"`
	OrdersDetail     []orderDetailMessage `json:"orders_detail"`
	OrdersGroup      []orderGroupMessage  `json:"orders_group"`
}

// fieldDecoder converts wire values to decimals, logging each malformed
// field once. Malformed values decode to zero so a single bad record never
// takes the dashboard down.
type fieldDecoder struct {
	log    logger.LoggerInterface
	issues int
}

func (d *fieldDecoder) money(ctx context.Context, adsID, field, raw string) decimal.Decimal {
	v, ok := money.Parse(raw)
	if !ok && raw != "" {
		d.issues++
		d.log.Warn(ctx, "malformed monetary value, using zero",
			"ads_id", adsID, "field", field, "raw", raw)
	}
	return v
}

func (d *fieldDecoder) number(ctx context.Context, adsID, field string, raw json.Number) decimal.Decimal {
	return d.money(ctx, adsID, field, string(raw))
}

func (d *fieldDecoder) date(ctx context.Context, adsID, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	d.issues++
	d.log.Warn(ctx, "malformed order date", "ads_id", adsID, "raw", raw)
	return time.Time{}
}

func (d *fieldDecoder) orderLine(ctx context.Context, adsID string, m orderLineMessage) domain.OrderLine {
	return domain.OrderLine{
		OrderID:          m.OrderID,
		SKU:              m.SKU,
		Name:             m.Name,
		Value:            d.money(ctx, adsID, "value", m.Value),
		Quantity:         m.Quantity,
		TotalValue:       d.number(ctx, adsID, "total_value", m.TotalValue),
		SaleFee:          d.money(ctx, adsID, "sale_fee", m.SaleFee),
		ShippingPrice:    d.money(ctx, adsID, "shipping_price", m.ShippingPrice),
		ShippingPayed:    d.money(ctx, adsID, "shipping_payed", m.ShippingPayed),
		ShippingDiscount: d.number(ctx, adsID, "shipping_discount", m.ShippingDiscount),
		Cost:             d.number(ctx, adsID, "cost", m.Cost),
		TotalCost:        d.number(ctx, adsID, "total_cost", m.TotalCost),
		Tax:              d.number(ctx, adsID, "tax", m.Tax),
		Income:           d.number(ctx, adsID, "income", m.Income),
		TaxPercentage:    d.number(ctx, adsID, "tax_percentage", m.TaxPercentage),
		ProfitValue:      d.number(ctx, adsID, "profit_value", m.ProfitValue),
		ProfitSale:       d.number(ctx, adsID, "profit_sale", m.ProfitSale),
		ProfitItem:       d.number(ctx, adsID, "profit_item", m.ProfitItem),
	}
}

func (d *fieldDecoder) announcement(ctx context.Context, m announcementMessage) domain.Announcement {
	a := domain.Announcement{
		AdsID:            m.AdsID,
		Name:             m.Name,
		SKU:              m.SKU,
		Modality:         m.Modality,
		Value:            d.money(ctx, m.AdsID, "value", m.Value),
		Quantity:         m.Quantity,
		TotalValue:       d.number(ctx, m.AdsID, "total_value", m.TotalValue),
		SaleFee:          d.money(ctx, m.AdsID, "sale_fee", m.SaleFee),
		ShippingPrice:    d.money(ctx, m.AdsID, "shipping_price", m.ShippingPrice),
		ShippingPayed:    d.money(ctx, m.AdsID, "shipping_payed", m.ShippingPayed),
		ShippingDiscount: d.number(ctx, m.AdsID, "shipping_discount", m.ShippingDiscount),
		Cost:             d.number(ctx, m.AdsID, "cost", m.Cost),
		TotalCost:        d.number(ctx, m.AdsID, "total_cost", m.TotalCost),
		Tax:              d.number(ctx, m.AdsID, "tax", m.Tax),
		Income:           d.number(ctx, m.AdsID, "income", m.Income),
		ProfitValue:      d.number(ctx, m.AdsID, "profit_value", m.ProfitValue),
		ProfitSale:       d.number(ctx, m.AdsID, "profit_sale", m.ProfitSale),
		ProfitItem:       d.number(ctx, m.AdsID, "profit_item", m.ProfitItem),
		IsRegistered:     m.IsRegistered,
	}

	a.OrdersDetail = make([]domain.OrderDetail, 0, len(m.OrdersDetail))
	for _, om := range m.OrdersDetail {
		a.OrdersDetail = append(a.OrdersDetail, domain.OrderDetail{
			OrderLine:    d.orderLine(ctx, m.AdsID, om.orderLineMessage),
			Date:         d.date(ctx, m.AdsID, om.Date),
			LogisticType: om.LogisticType,
			IsCancel:     om.IsCancel,
		})
	}

	a.OrdersGroup = make([]domain.OrderGroup, 0, len(m.OrdersGroup))
	for _, om := range m.OrdersGroup {
		a.OrdersGroup = append(a.OrdersGroup, domain.OrderGroup{
			OrderLine: d.orderLine(ctx, m.AdsID, om.orderLineMessage),
		})
	}

	return a
}
