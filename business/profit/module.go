// Package profit implements the profitability aggregation bounded context.
package profit

import (
	"context"

	"github.com/brunovms/sellerboard/business/profit/app"
	profitDI "github.com/brunovms/sellerboard/business/profit/di"
	"github.com/brunovms/sellerboard/internal/di"
	"github.com/brunovms/sellerboard/internal/monolith"
)

// Module implements the profit bounded context.
type Module struct{}

// RegisterServices registers all profit services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, profitDI.ProfitService, func(sr di.ServiceRegistry) *app.ProfitService {
		return app.NewProfitService()
	})

	return nil
}

// Startup initializes the profit module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "profit module started")
	return nil
}
