package commands

import (
	"context"

	"retail/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Registers a new order in Pending status under its unique identifier.
type CreateOrderCommandHandler struct {
	manager *services.OrderManager
}

// NewCreateOrderCommandHandler creates a handler bound to the order registry.
func NewCreateOrderCommandHandler(manager *services.OrderManager) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		manager: manager,
	}
}

// Handle processes the order creation command. Fails with an
// ObjectAlreadyExistsError when the order ID is already registered.
func (h *CreateOrderCommandHandler) Handle(_ context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.manager.CreateOrder(cmd.OrderID(), cmd.CustomerID(), cmd.ShippingAddress())
	return err
}
