package commands

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/services"
)

// AddItemCommandHandler handles the business logic for extending an order
// with line items. Resolves the product from the catalog and snapshots its
// current price into the order.
type AddItemCommandHandler struct {
	manager *services.OrderManager
	catalog *services.ProductCatalog
}

// NewAddItemCommandHandler creates a handler bound to the order registry and
// the product catalog.
func NewAddItemCommandHandler(
	manager *services.OrderManager,
	catalog *services.ProductCatalog,
) AddItemCommandHandler {
	return AddItemCommandHandler{
		manager: manager,
		catalog: catalog,
	}
}

// Handle processes the add item command. Fails with an ObjectNotFoundError
// when the order or product is unknown, and with ErrOutOfStock when the
// product cannot cover the requested quantity.
//
// The product is held under the catalog lock for the whole mutation so the
// availability check and price snapshot cannot interleave with concurrent
// stock adjustments. Lock order is catalog, then registry.
func (h *AddItemCommandHandler) Handle(_ context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.catalog.WithProduct(cmd.ProductID(), func(p *product.Product) error {
		return h.manager.WithOrder(cmd.OrderID(), func(o *order.Order) error {
			return o.AddItem(p, cmd.Quantity())
		})
	})
}
