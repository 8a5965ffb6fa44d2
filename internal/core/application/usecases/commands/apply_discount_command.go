package commands

import (
	"errors"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrApplyDiscountCommandIsNotConstructed = errors.New(
	"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
)

// ApplyDiscountCommand represents a request to apply a discount code to an
// order. The code itself is not validated here: rejected codes are a
// best-effort outcome of the rule table, not a malformed command.
type ApplyDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	discountCode string

	guard guard.ConstructorGuard
}

// NewApplyDiscountCommand creates a command to apply a discount code.
func NewApplyDiscountCommand(orderID, discountCode string) (ApplyDiscountCommand, error) {
	discountCommand := ApplyDiscountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := discountCommand.setOrderID(orderID); err != nil {
		return ApplyDiscountCommand{}, err
	}
	discountCommand.discountCode = discountCode

	return discountCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being discounted.
func (c ApplyDiscountCommand) OrderID() string {
	return c.orderID
}

// DiscountCode returns the code to apply, as submitted.
func (c ApplyDiscountCommand) DiscountCode() string {
	return c.discountCode
}

func (c *ApplyDiscountCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
