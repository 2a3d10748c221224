// Package di contains dependency injection tokens for the report context.
package di

import (
	"github.com/brunovms/sellerboard/business/report/app"
	"github.com/brunovms/sellerboard/internal/di"
)

// Public service tokens - exposed to other modules
var (
	ReportService = di.NewToken[*app.ReportService]("report.ReportService")
	XLSXReporter  = di.NewToken[app.Reporter]("report.XLSXReporter")
	ConsoleWriter = di.NewToken[app.Reporter]("report.ConsoleWriter")
)

// Helper functions for type-safe access
func GetReportService(c di.ServiceRegistry) *app.ReportService {
	return di.GetToken(c, ReportService)
}

func GetXLSXReporter(c di.ServiceRegistry) app.Reporter {
	return di.GetToken(c, XLSXReporter)
}

func GetConsoleWriter(c di.ServiceRegistry) app.Reporter {
	return di.GetToken(c, ConsoleWriter)
}
