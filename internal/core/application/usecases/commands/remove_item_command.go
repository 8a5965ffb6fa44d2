package commands

import (
	"errors"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove every line item of a
// product from an order.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove a product from an order.
func NewRemoveItemCommand(orderID, productID string) (RemoveItemCommand, error) {
	itemCommand := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setProductID(productID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being reduced.
func (c RemoveItemCommand) OrderID() string {
	return c.orderID
}

// ProductID returns the identifier of the product to remove.
func (c RemoveItemCommand) ProductID() string {
	return c.productID
}

func (c *RemoveItemCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}
