package commands

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
)

// ShipOrderCommandHandler handles the business logic for shipping an order.
type ShipOrderCommandHandler struct {
	manager *services.OrderManager
}

// NewShipOrderCommandHandler creates a handler bound to the order registry.
func NewShipOrderCommandHandler(manager *services.OrderManager) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		manager: manager,
	}
}

// Handle processes the ship command. Fails with a StateTransitionError when
// the order is not in Processing status.
func (h *ShipOrderCommandHandler) Handle(_ context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.manager.WithOrder(cmd.OrderID(), func(o *order.Order) error {
		return o.Ship(cmd.TrackingNumber())
	})
}
