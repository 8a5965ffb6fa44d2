package commands

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
)

// RemoveItemCommandHandler handles the business logic for removing line
// items from an order.
type RemoveItemCommandHandler struct {
	manager *services.OrderManager
}

// NewRemoveItemCommandHandler creates a handler bound to the order registry.
func NewRemoveItemCommandHandler(manager *services.OrderManager) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		manager: manager,
	}
}

// Handle processes the remove item command. The boolean reports whether any
// line item was removed; removing an absent product is not an error.
func (h *RemoveItemCommandHandler) Handle(_ context.Context, cmd RemoveItemCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var removed bool
	err := h.manager.WithOrder(cmd.OrderID(), func(o *order.Order) error {
		removed = o.RemoveItem(cmd.ProductID())
		return nil
	})
	return removed, err
}
