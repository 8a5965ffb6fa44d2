package commands

import (
	"errors"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand represents a request to pay for a pending order.
// CustomerEmail is optional; when present, a confirmation is sent after a
// successful charge.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	paymentMethod string
	amount        decimal.Decimal
	customerEmail string

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to charge an order. Amount must
// be positive; whether it covers the order total is decided by the aggregate.
func NewProcessPaymentCommand(
	orderID, paymentMethod string,
	amount decimal.Decimal,
	customerEmail string,
) (ProcessPaymentCommand, error) {
	paymentCommand := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentMethod(paymentMethod),
		paymentCommand.setAmount(amount),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}
	paymentCommand.customerEmail = customerEmail

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c ProcessPaymentCommand) OrderID() string {
	return c.orderID
}

// PaymentMethod returns the payment instrument identifier.
func (c ProcessPaymentCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Amount returns the tendered payment amount.
func (c ProcessPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// CustomerEmail returns the confirmation address, empty when none was given.
func (c ProcessPaymentCommand) CustomerEmail() string {
	return c.customerEmail
}

func (c *ProcessPaymentCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *ProcessPaymentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
