// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	profit "github.com/brunovms/sellerboard/business/profit/domain"
	"github.com/brunovms/sellerboard/internal/money"
)

// SummaryComponent renders the portfolio summary cards.
type SummaryComponent struct {
	summary profit.Summary
	loaded  bool
}

// NewSummaryComponent creates a new summary component.
func NewSummaryComponent() *SummaryComponent {
	return &SummaryComponent{}
}

// Update replaces the displayed summary.
func (s *SummaryComponent) Update(summary profit.Summary) {
	s.summary = summary
	s.loaded = true
}

// View renders the summary cards.
func (s *SummaryComponent) View() string {
	if !s.loaded {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).
			Render("Carregando resumo...")
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#374151")).
		Padding(0, 2).
		Width(28)

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	upStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	downStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

	sum := s.summary

	sales := cardStyle.Render(
		titleStyle.Render("Vendas ↑") + "\n" +
			upStyle.Render(money.FormatBRL(sum.Sales)))

	costs := cardStyle.Render(
		titleStyle.Render("Custos ↓") + "\n" +
			downStyle.Render(money.FormatBRL(sum.Cost)))

	profitStyle := upStyle
	if sum.Profit.IsNegative() {
		profitStyle = downStyle
	}
	profitCard := cardStyle.Render(
		titleStyle.Render("Lucro") + "\n" +
			profitStyle.Render(fmt.Sprintf("%s (%s)",
				money.FormatBRL(sum.Profit),
				money.FormatPercent(sum.PercentProfit, 2))))

	cards := lipgloss.JoinHorizontal(lipgloss.Top, sales, " ", costs, " ", profitCard)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Unidades vendidas: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d un.", sum.UnitsSold)))
	b.WriteString(titleStyle.Render("   Ticket médio: "))
	b.WriteString(valueStyle.Render(money.FormatBRL(sum.AverageTicket)))
	b.WriteString(titleStyle.Render("   Vendas canceladas: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%d un.)",
		money.FormatBRL(sum.CancelledSales), sum.CancelledUnits)))

	return b.String()
}
