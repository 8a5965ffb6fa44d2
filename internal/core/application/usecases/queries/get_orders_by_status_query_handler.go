package queries

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
)

// GetOrdersByStatusQueryHandler answers status filter queries from the live
// registry.
type GetOrdersByStatusQueryHandler struct {
	manager *services.OrderManager
}

// NewGetOrdersByStatusQueryHandler creates a handler bound to the order
// registry.
func NewGetOrdersByStatusQueryHandler(manager *services.OrderManager) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{manager: manager}
}

// Handle returns snapshots of orders in the queried status, in registration
// order. No matches yields an empty slice, never an error.
func (h GetOrdersByStatusQueryHandler) Handle(
	_ context.Context,
	query GetOrdersByStatusQuery,
) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.manager.StatusSnapshots(query.Status()), nil
}
