package commands

import (
	"context"

	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/services"
)

// CreateProductCommandHandler handles the business logic for catalog
// registration. Constructs a validated product and registers it under its
// unique identifier.
type CreateProductCommandHandler struct {
	catalog *services.ProductCatalog
}

// NewCreateProductCommandHandler creates a handler bound to the product
// catalog.
func NewCreateProductCommandHandler(catalog *services.ProductCatalog) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		catalog: catalog,
	}
}

// Handle processes the product registration command. Fails with an
// ObjectAlreadyExistsError when the product ID is already registered.
func (h *CreateProductCommandHandler) Handle(_ context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Stock())
	if err != nil {
		return err
	}

	return h.catalog.Add(p)
}
