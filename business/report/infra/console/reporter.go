// Package console renders profitability reports as plain text for CLI mode.
package console

import (
	"context"
	"fmt"
	"io"
	"os"

	profit "github.com/brunovms/sellerboard/business/profit/domain"
	"github.com/brunovms/sellerboard/business/report/app"
	"github.com/brunovms/sellerboard/internal/money"
)

const rule = "--------------------------------------------------------------------------------"

// Reporter implements app.Reporter for terminal output.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to stdout.
func NewReporter() *Reporter {
	return &Reporter{out: os.Stdout}
}

// NewReporterTo creates a Reporter writing to w.
func NewReporterTo(w io.Writer) *Reporter {
	return &Reporter{out: w}
}

// Write renders the report as text and returns "stdout".
func (r *Reporter) Write(ctx context.Context, report app.Report) (string, error) {
	s := report.Summary

	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintf(r.out, "SELLERBOARD — página %d de %d — %s\n",
		report.Page, report.TotalPages, report.GeneratedAt.Format("02/01/2006 15:04"))
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintln(r.out, "RESUMO")
	fmt.Fprintf(r.out, "  Vendas:              %s\n", money.FormatBRL(s.Sales))
	fmt.Fprintf(r.out, "  Custos:              %s\n", money.FormatBRL(s.Cost))
	fmt.Fprintf(r.out, "  Lucro:               %s (%s)\n", money.FormatBRL(s.Profit), money.FormatPercent(s.PercentProfit, 2))
	fmt.Fprintf(r.out, "  Unidades vendidas:   %d un.\n", s.UnitsSold)
	fmt.Fprintf(r.out, "  Ticket médio:        %s\n", money.FormatBRL(s.AverageTicket))
	fmt.Fprintf(r.out, "  Vendas canceladas:   %s (%d un.)\n", money.FormatBRL(s.CancelledSales), s.CancelledUnits)

	for _, row := range report.Rows {
		rollup := row.Rollup
		fmt.Fprintln(r.out, rule)
		fmt.Fprintf(r.out, "%s\n", row.Listing.Name)
		fmt.Fprintf(r.out, "  %s | %s | %s\n", row.Listing.AdsID, row.Listing.SKU, money.FormatBRL(row.Listing.Value))
		fmt.Fprintf(r.out, "  Vendas:         %d un. / %s\n", row.Listing.Quantity, money.FormatBRL(row.Listing.TotalValue))
		fmt.Fprintf(r.out, "  Tarifa:         %s\n", money.FormatBRL(rollup.SaleFee))
		fmt.Fprintf(r.out, "  Frete pago:     %s\n", money.FormatBRL(rollup.ShippingPaid))
		fmt.Fprintf(r.out, "  Frete desc:     %s\n", money.FormatBRL(rollup.ShippingDiscount))
		fmt.Fprintf(r.out, "  Custo unitário: %s\n", money.FormatBRL(rollup.UnitCost))
		fmt.Fprintf(r.out, "  Custo total:    %s\n", money.FormatBRL(rollup.TotalCost))
		fmt.Fprintf(r.out, "  Imposto:        %s\n", money.FormatBRL(rollup.Tax))
		fmt.Fprintf(r.out, "  Receita:        %s\n", money.FormatBRL(rollup.Revenue))
		fmt.Fprintf(r.out, "  Lucro:          %s\n", money.FormatBRL(rollup.Profit))
		fmt.Fprintf(r.out, "  MC: %s   ROI: %s\n", formatPercent(rollup.Margin), formatPercent(rollup.ROI))
	}

	fmt.Fprintln(r.out, "================================================================================")

	return "stdout", nil
}

func formatPercent(p profit.Percent) string {
	if !p.Valid {
		return "—"
	}
	return money.FormatPercent(p.Value, 1)
}
