// Package di contains dependency injection tokens for the profit context.
package di

import (
	"github.com/brunovms/sellerboard/business/profit/app"
	"github.com/brunovms/sellerboard/internal/di"
)

// Public service tokens - exposed to other modules
var (
	ProfitService = di.NewToken[*app.ProfitService]("profit.ProfitService")
)

// Helper functions for type-safe access
func GetProfitService(c di.ServiceRegistry) *app.ProfitService {
	return di.GetToken(c, ProfitService)
}
