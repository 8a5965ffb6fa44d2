package commands

import (
	"context"

	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/services"
)

// UpdateStockCommandHandler handles the business logic for stock adjustments.
// The mutation runs under the catalog lock so it cannot interleave with
// availability checks from concurrent add item commands.
type UpdateStockCommandHandler struct {
	catalog *services.ProductCatalog
}

// NewUpdateStockCommandHandler creates a handler bound to the product
// catalog.
func NewUpdateStockCommandHandler(catalog *services.ProductCatalog) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{
		catalog: catalog,
	}
}

// Handle processes the stock adjustment command and returns the resulting
// stock level. Fails with an ObjectNotFoundError when the product is unknown
// and with ErrInsufficientStock when the delta would drive the stock
// negative, leaving it unchanged.
func (h *UpdateStockCommandHandler) Handle(_ context.Context, cmd UpdateStockCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var stock int
	err := h.catalog.WithProduct(cmd.ProductID(), func(p *product.Product) error {
		if err := p.UpdateStock(cmd.Delta()); err != nil {
			return err
		}
		stock = p.Stock()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return stock, nil
}
