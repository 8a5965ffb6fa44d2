package commands

import (
	"errors"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a quantity of a catalog product
// to an existing order.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a line item to an order.
// Quantity must be at least 1.
func NewAddItemCommand(orderID, productID string, quantity int) (AddItemCommand, error) {
	itemCommand := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setProductID(productID),
		itemCommand.setQuantity(quantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being extended.
func (c AddItemCommand) OrderID() string {
	return c.orderID
}

// ProductID returns the identifier of the catalog product.
func (c AddItemCommand) ProductID() string {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}

func (c *AddItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
