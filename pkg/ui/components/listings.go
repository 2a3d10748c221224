package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
	profit "github.com/brunovms/sellerboard/business/profit/domain"
	"github.com/brunovms/sellerboard/internal/money"
)

// RowMode is a listing row's expansion state.
type RowMode int

const (
	ModeNone RowMode = iota
	ModeGroup
	ModeDetail
)

// ListingRow pairs a listing with its pre-computed metrics. The component
// only renders; all arithmetic happens in the profit module before rows
// arrive here.
type ListingRow struct {
	Listing       catalog.Announcement
	Rollup        profit.ListingRollup
	GroupMetrics  []profit.OrderMetrics
	DetailMetrics []profit.OrderMetrics
}

// ListingsComponent renders the paginated listing table with expandable
// group/detail rows.
type ListingsComponent struct {
	rows     []ListingRow
	selected int
	modes    map[string]RowMode
}

// NewListingsComponent creates a new listings component.
func NewListingsComponent() *ListingsComponent {
	return &ListingsComponent{
		modes: make(map[string]RowMode),
	}
}

// SetRows replaces the displayed page. Expansion state is keyed by listing
// id and survives reloads of the same listings; selection is clamped.
func (l *ListingsComponent) SetRows(rows []ListingRow) {
	l.rows = rows
	if l.selected >= len(rows) {
		l.selected = 0
	}
}

// Rows returns the current rows.
func (l *ListingsComponent) Rows() []ListingRow {
	return l.rows
}

// MoveUp moves the selection up.
func (l *ListingsComponent) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down.
func (l *ListingsComponent) MoveDown() {
	if l.selected < len(l.rows)-1 {
		l.selected++
	}
}

// Selected returns the selected listing id, or "" when the page is empty.
func (l *ListingsComponent) Selected() string {
	if l.selected < 0 || l.selected >= len(l.rows) {
		return ""
	}
	return l.rows[l.selected].Listing.AdsID
}

// Mode returns a listing's expansion mode.
func (l *ListingsComponent) Mode(adsID string) RowMode {
	return l.modes[adsID]
}

// Toggle flips the selected listing between the given mode and collapsed.
// Only the selected listing's state changes.
func (l *ListingsComponent) Toggle(mode RowMode) {
	adsID := l.Selected()
	if adsID == "" {
		return
	}
	if l.modes[adsID] == mode {
		l.modes[adsID] = ModeNone
		return
	}
	l.modes[adsID] = mode
}

// View renders the table.
func (l *ListingsComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	childStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	if len(l.rows) == 0 {
		return mutedStyle.Render("Nenhum anúncio para exibir.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("ANÚNCIOS"))
	b.WriteString("\n")

	for i, row := range l.rows {
		cursor := "  "
		nameStyle := mutedStyle
		if i == l.selected {
			cursor = "❯ "
			nameStyle = selectedStyle
		}

		listing := row.Listing
		rollup := row.Rollup

		b.WriteString("\n")
		b.WriteString(cursor)
		b.WriteString(nameStyle.Render(listing.Name))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("    %s │ %s │ %s",
			listing.AdsID, listing.SKU, money.FormatBRL(listing.Value))))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    Vendas: %d un. / %s   Tarifa: %s   Frete pago: %s   Frete desc: %s\n",
			listing.Quantity,
			money.FormatBRL(listing.TotalValue),
			money.FormatBRL(rollup.SaleFee),
			money.FormatBRL(rollup.ShippingPaid),
			money.FormatBRL(rollup.ShippingDiscount)))
		b.WriteString(fmt.Sprintf("    Custo unit: %s   Custo total: %s   Imposto: %s   Receita: %s\n",
			money.FormatBRL(rollup.UnitCost),
			money.FormatBRL(rollup.TotalCost),
			money.FormatBRL(rollup.Tax),
			money.FormatBRL(rollup.Revenue)))
		b.WriteString(fmt.Sprintf("    Lucro: %s   MC: %s   ROI: %s\n",
			renderAmount(money.FormatBRL(rollup.Profit), rollup.Profit.Sign()),
			renderPercent(rollup.Margin),
			renderPercent(rollup.ROI)))

		switch l.modes[listing.AdsID] {
		case ModeGroup:
			for j, group := range listing.OrdersGroup {
				if j >= len(row.GroupMetrics) {
					break
				}
				b.WriteString(childStyle.Render(renderOrderLine(group.OrderLine, row.GroupMetrics[j], "")))
				b.WriteString("\n")
			}
		case ModeDetail:
			for j, detail := range listing.OrdersDetail {
				if j >= len(row.DetailMetrics) {
					break
				}
				header := fmt.Sprintf("%s │ pedido %s │ %s │ %s",
					detail.Date.Format("02/01/2006"), detail.OrderID, detail.LogisticType, detail.SKU)
				if detail.IsCancel {
					header += " │ CANCELADO"
				}
				b.WriteString(childStyle.Render(renderOrderLine(detail.OrderLine, row.DetailMetrics[j], header)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func renderOrderLine(order catalog.OrderLine, metrics profit.OrderMetrics, header string) string {
	var b strings.Builder

	if header != "" {
		b.WriteString("      " + header + "\n")
	}
	b.WriteString(fmt.Sprintf("      Valor: %s   Qtde: %d   Total: %s\n",
		money.FormatBRL(order.Value), order.Quantity, money.FormatBRL(order.TotalValue)))
	b.WriteString(fmt.Sprintf("      Tarifa: %s   Frete pago: %s   Frete desc: %s\n",
		money.FormatBRL(order.SaleFee),
		money.FormatBRL(order.ShippingPayed),
		money.FormatBRL(order.ShippingDiscount)))
	b.WriteString(fmt.Sprintf("      Unitário: %s   Total: %s   Imposto: %s   Receita: %s   Lucro: %s   MC: %s   ROI: %s",
		money.FormatBRL(metrics.UnitCost),
		money.FormatBRL(metrics.TotalCost),
		money.FormatBRL(metrics.Tax),
		money.FormatBRL(metrics.Revenue),
		money.FormatBRL(metrics.Profit),
		renderPercent(metrics.Margin),
		renderPercent(metrics.ROI)))

	return b.String()
}

func renderAmount(formatted string, sign int) string {
	positive := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	negative := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

	if sign < 0 {
		return negative.Render(formatted)
	}
	return positive.Render(formatted)
}

func renderPercent(p profit.Percent) string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	positive := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	negative := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

	if !p.Valid {
		return muted.Render("—")
	}
	text := money.FormatPercent(p.Value, 1)
	if p.Value.IsNegative() {
		return negative.Render(text)
	}
	return positive.Render(text)
}
