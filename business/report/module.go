// Package report implements report building and export for the dashboard.
package report

import (
	"context"

	profitDI "github.com/brunovms/sellerboard/business/profit/di"
	"github.com/brunovms/sellerboard/business/report/app"
	reportDI "github.com/brunovms/sellerboard/business/report/di"
	"github.com/brunovms/sellerboard/business/report/infra/console"
	"github.com/brunovms/sellerboard/business/report/infra/xlsx"
	"github.com/brunovms/sellerboard/internal/config"
	"github.com/brunovms/sellerboard/internal/di"
	"github.com/brunovms/sellerboard/internal/monolith"
)

// Module implements the report bounded context.
type Module struct{}

// RegisterServices registers all report services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, reportDI.ReportService, func(sr di.ServiceRegistry) *app.ReportService {
		return app.NewReportService(profitDI.GetProfitService(sr))
	})

	di.RegisterToken(c, reportDI.XLSXReporter, func(sr di.ServiceRegistry) app.Reporter {
		cfg := sr.Get("config").(*config.Config)
		return xlsx.NewExporter(cfg.Dashboard.ExportDir)
	})

	di.RegisterToken(c, reportDI.ConsoleWriter, func(sr di.ServiceRegistry) app.Reporter {
		return console.NewReporter()
	})

	return nil
}

// Startup initializes the report module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "report module started")
	return nil
}
