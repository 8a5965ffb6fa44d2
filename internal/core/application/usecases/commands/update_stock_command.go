package commands

import (
	"errors"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrUpdateStockCommandIsNotConstructed = errors.New(
	"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
)

// UpdateStockCommand represents a request to adjust a product's stock level
// by a delta, which may be negative for consumption or shrinkage.
type UpdateStockCommand struct { //nolint:recvcheck //using for validation
	productID string
	delta     int

	guard guard.ConstructorGuard
}

// NewUpdateStockCommand creates a command to adjust product stock. The
// product ID is required; whether the delta can be absorbed is decided by the
// product itself.
func NewUpdateStockCommand(productID string, delta int) (UpdateStockCommand, error) {
	stockCommand := UpdateStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := stockCommand.setProductID(productID); err != nil {
		return UpdateStockCommand{}, err
	}
	stockCommand.delta = delta

	return stockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to adjust.
func (c UpdateStockCommand) ProductID() string {
	return c.productID
}

// Delta returns the signed stock adjustment.
func (c UpdateStockCommand) Delta() int {
	return c.delta
}

func (c *UpdateStockCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}
