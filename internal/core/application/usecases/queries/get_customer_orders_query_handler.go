package queries

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
)

// GetCustomerOrdersQueryHandler answers customer order queries from the live
// registry. Results are detached snapshots, never live aggregates.
type GetCustomerOrdersQueryHandler struct {
	manager *services.OrderManager
}

// NewGetCustomerOrdersQueryHandler creates a handler bound to the order
// registry.
func NewGetCustomerOrdersQueryHandler(manager *services.OrderManager) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{manager: manager}
}

// Handle returns snapshots of the customer's orders in registration order.
// An unknown customer yields an empty slice, never an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	_ context.Context,
	query GetCustomerOrdersQuery,
) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.manager.CustomerSnapshots(query.CustomerID()), nil
}
