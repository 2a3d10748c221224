// Package xlsx renders profitability reports as Excel workbooks.
package xlsx

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	profit "github.com/brunovms/sellerboard/business/profit/domain"
	"github.com/brunovms/sellerboard/business/report/app"
	"github.com/brunovms/sellerboard/internal/apperror"
	"github.com/brunovms/sellerboard/internal/money"
)

const (
	summarySheet  = "Resumo"
	listingsSheet = "Anúncios"
)

// Exporter writes reports to XLSX files in a fixed directory.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Write renders the report and returns the file path.
func (e *Exporter) Write(ctx context.Context, report app.Report) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeSummary(f, report); err != nil {
		return "", apperror.Internal(apperror.CodeReportExportFailed, "summary sheet", err)
	}
	if err := e.writeListings(f, report); err != nil {
		return "", apperror.Internal(apperror.CodeReportExportFailed, "listings sheet", err)
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", apperror.Internal(apperror.CodeReportExportFailed, "delete default sheet", err)
	}

	name := fmt.Sprintf("sellerboard_%s.xlsx", report.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(e.dir, name)

	if err := f.SaveAs(path); err != nil {
		return "", apperror.Internal(apperror.CodeReportExportFailed, path, err)
	}

	return path, nil
}

func (e *Exporter) writeSummary(f *excelize.File, report app.Report) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	s := report.Summary
	rows := [][]any{
		{"Gerado em", report.GeneratedAt.Format("02/01/2006 15:04")},
		{"Página", fmt.Sprintf("%d de %d", report.Page, report.TotalPages)},
		{},
		{"Vendas", money.FormatBRL(s.Sales)},
		{"Custos", money.FormatBRL(s.Cost)},
		{"Lucro", money.FormatBRL(s.Profit)},
		{"Lucro (%)", money.FormatPercent(s.PercentProfit, 2)},
		{"Unidades vendidas", s.UnitsSold},
		{"Ticket médio", money.FormatBRL(s.AverageTicket)},
		{"Vendas canceladas", money.FormatBRL(s.CancelledSales)},
		{"Unidades canceladas", s.CancelledUnits},
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(summarySheet, "A", "B", 24)
}

func (e *Exporter) writeListings(f *excelize.File, report app.Report) error {
	if _, err := f.NewSheet(listingsSheet); err != nil {
		return err
	}

	headers := []any{
		"Anúncio", "ID", "SKU", "Qtde", "Vendas",
		"Tarifa", "Frete Pago", "Frete Desc",
		"Custo Unitário", "Custo Total", "Imposto", "Receita",
		"Lucro (R$)", "MC", "ROI",
	}

	for j, h := range headers {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(listingsSheet, cell, h); err != nil {
			return err
		}
	}

	for i, row := range report.Rows {
		r := row.Rollup
		values := []any{
			row.Listing.Name,
			row.Listing.AdsID,
			row.Listing.SKU,
			row.Listing.Quantity,
			money.FormatBRL(row.Listing.TotalValue),
			money.FormatBRL(r.SaleFee),
			money.FormatBRL(r.ShippingPaid),
			money.FormatBRL(r.ShippingDiscount),
			money.FormatBRL(r.UnitCost),
			money.FormatBRL(r.TotalCost),
			money.FormatBRL(r.Tax),
			money.FormatBRL(r.Revenue),
			money.FormatBRL(r.Profit),
			formatPercent(r.Margin),
			formatPercent(r.ROI),
		}

		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(listingsSheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(listingsSheet, "A", "A", 36)
}

func formatPercent(p profit.Percent) string {
	if !p.Valid {
		return "—"
	}
	return money.FormatPercent(p.Value, 1)
}
