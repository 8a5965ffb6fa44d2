package commands

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
)

// CancelOrderCommandHandler handles the business logic for cancelling an
// order before it ships.
type CancelOrderCommandHandler struct {
	manager *services.OrderManager
}

// NewCancelOrderCommandHandler creates a handler bound to the order registry.
func NewCancelOrderCommandHandler(manager *services.OrderManager) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		manager: manager,
	}
}

// Handle processes the cancel command. Fails with a StateTransitionError when
// the order has already shipped, been delivered, or been cancelled.
func (h *CancelOrderCommandHandler) Handle(_ context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.manager.WithOrder(cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel()
	})
}
