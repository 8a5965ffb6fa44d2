package queries

import (
	"context"

	"retail/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// GetTotalRevenueQueryHandler answers revenue queries from the live
// registry.
type GetTotalRevenueQueryHandler struct {
	manager *services.OrderManager
}

// NewGetTotalRevenueQueryHandler creates a handler bound to the order
// registry.
func NewGetTotalRevenueQueryHandler(manager *services.OrderManager) GetTotalRevenueQueryHandler {
	return GetTotalRevenueQueryHandler{manager: manager}
}

// Handle returns the registry-wide revenue sum.
func (h GetTotalRevenueQueryHandler) Handle(
	_ context.Context,
	query GetTotalRevenueQuery,
) (decimal.Decimal, error) {
	if err := query.Validate(); err != nil {
		return decimal.Zero, err
	}

	return h.manager.TotalRevenue(), nil
}
