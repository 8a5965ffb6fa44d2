package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// taxRate is the sales tax applied to the item subtotal.
var taxRate = decimal.NewFromFloat(0.08)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory function.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOutOfStock is returned by AddItem when the product cannot cover the
	// requested quantity. The order's items are unchanged on failure.
	ErrOutOfStock = errors.New("product out of stock")

	// ErrInsufficientPayment is returned by ProcessPayment when the offered
	// amount does not cover the order total.
	ErrInsufficientPayment = errors.New("insufficient payment")
)

// ChargeResult is the payment gateway's reported outcome. A Success of false
// is a normal negative result, not an error: transport faults are returned
// separately.
type ChargeResult struct {
	Success       bool
	TransactionID string
	Error         string
}

// PaymentGateway is the boundary contract the order consumes to settle
// payment. Implementations live in the adapters layer.
type PaymentGateway interface {
	Charge(ctx context.Context, method string, amount decimal.Decimal) (ChargeResult, error)
}

// Order is the aggregate root for a customer's purchase request, tracked
// from creation through fulfillment.
//
// Order maintains these invariants:
//   - id and customerID are non-empty and immutable
//   - totalAmount is always derivable from items, tax, shipping cost, and
//     the applied discount; it is recomputed after every money mutation and
//     bounded at zero
//   - status transitions follow the fulfillment state machine in Status
//   - line items keep their insertion order
type Order struct {
	// id uniquely identifies the order across the registry
	id string

	// customerID identifies the customer the order belongs to
	customerID string

	// shippingAddress is the delivery destination, owned by the order
	shippingAddress kernel.Address

	// items is the ordered sequence of line-item snapshots
	items []LineItem

	// status is the current fulfillment state
	status Status

	createdAt time.Time
	updatedAt time.Time

	totalAmount     decimal.Decimal
	discountApplied decimal.Decimal
	taxAmount       decimal.Decimal
	shippingCost    decimal.Decimal

	// trackingNumber is recorded when the order ships
	trackingNumber string

	// transactionID is the gateway reference recorded on successful payment
	transactionID string

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order for a customer with an empty item list
// and zeroed totals. The id and customerID are required and the shipping
// address must be a constructed kernel.Address.
func NewOrder(id, customerID string, shippingAddress kernel.Address) (*Order, error) {
	now := time.Now()
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was constructed via NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the identifier of the customer the order belongs to.
func (o *Order) CustomerID() string {
	return o.customerID
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current fulfillment state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TotalAmount returns the current order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// DiscountApplied returns the currently applied discount amount.
func (o *Order) DiscountApplied() decimal.Decimal {
	return o.discountApplied
}

// TaxAmount returns the tax computed from the current item subtotal.
func (o *Order) TaxAmount() decimal.Decimal {
	return o.taxAmount
}

// ShippingCost returns the current shipping cost.
func (o *Order) ShippingCost() decimal.Decimal {
	return o.shippingCost
}

// TrackingNumber returns the tracking number recorded at shipment,
// or the empty string before the order ships.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// TransactionID returns the gateway reference recorded on successful
// payment, or the empty string before payment.
func (o *Order) TransactionID() string {
	return o.transactionID
}

// AddItem appends a line-item snapshot for the product at its current price.
// It fails with ErrOutOfStock when the product cannot cover the requested
// quantity, leaving the items unchanged.
//
// Product stock is not decremented here; inventory reservation is outside
// the order's responsibility.
func (o *Order) AddItem(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	if !p.IsAvailable(quantity) {
		return fmt.Errorf("order %s: product %s: requested %d, stock %d: %w",
			o.id, p.ID(), quantity, p.Stock(), ErrOutOfStock)
	}

	o.items = append(o.items, LineItem{
		ProductID: p.ID(),
		Name:      p.Name(),
		UnitPrice: p.Price(),
		Quantity:  quantity,
	})
	o.recalcTotals()
	return nil
}

// RemoveItem removes every line item matching productID and reports whether
// any removal occurred. Totals are recomputed only when something was
// removed.
func (o *Order) RemoveItem(productID string) bool {
	kept := o.items[:0]
	for _, item := range o.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	removed := len(kept) != len(o.items)
	o.items = kept
	if removed {
		o.recalcTotals()
	}
	return removed
}

// SetShippingCost sets the shipping cost and recomputes totals.
// The cost must not be negative.
func (o *Order) SetShippingCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("shipping cost",
			fmt.Errorf("%s is negative", cost))
	}
	o.shippingCost = cost
	o.recalcTotals()
	return nil
}

// ApplyDiscount evaluates a promotional code against the current total and
// records the resulting discount amount, replacing any previously applied
// discount rather than accumulating.
//
// Codes shorter than four characters and codes missing from the rule table
// return a zero amount with ErrDiscountCodeTooShort or
// ErrUnknownDiscountCode; the order is unchanged. These failures are
// best-effort signals for the caller to log, not fatal conditions.
func (o *Order) ApplyDiscount(code string) (decimal.Decimal, error) {
	if len(code) < minDiscountCodeLength {
		return decimal.Zero, fmt.Errorf("order %s: discount code %q: %w",
			o.id, code, ErrDiscountCodeTooShort)
	}

	rule, ok := discountRules()[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("order %s: discount code %q: %w",
			o.id, code, ErrUnknownDiscountCode)
	}

	amount := rule.apply(o)
	o.discountApplied = amount
	o.recalcTotals()
	return amount, nil
}

// ProcessPayment settles the order through the payment gateway.
//
// Preconditions: the order must be Pending and amount must cover the
// current total; violations fail with ErrInvalidStateTransition or
// ErrInsufficientPayment and leave the order unchanged.
//
// A gateway-reported failure returns (false, nil) with no state change.
// A transport fault from the gateway is returned unmodified; the order is
// unchanged and the call is fatal, the order is not.
// On success the order moves to Processing and the gateway transaction
// reference is recorded.
func (o *Order) ProcessPayment(ctx context.Context, gateway PaymentGateway, method string, amount decimal.Decimal) (bool, error) {
	if _, err := o.status.Pay(); err != nil {
		return false, fmt.Errorf("order %s: %w", o.id, err)
	}

	if amount.LessThan(o.totalAmount) {
		return false, fmt.Errorf("order %s: offered %s, required %s: %w",
			o.id, amount, o.totalAmount, ErrInsufficientPayment)
	}

	result, err := gateway.Charge(ctx, method, amount)
	if err != nil {
		return false, err
	}
	if !result.Success {
		return false, nil
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return false, fmt.Errorf("order %s: %w", o.id, err)
	}

	o.status = newStatus
	o.transactionID = result.TransactionID
	o.touch()
	return true, nil
}

// Ship moves a Processing order to Shipped, recording the tracking number.
// Any other current status fails with ErrInvalidStateTransition and leaves
// the order unchanged.
func (o *Order) Ship(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return fmt.Errorf("order %s: %w", o.id, err)
	}

	o.status = newStatus
	o.trackingNumber = trackingNumber
	o.touch()
	return nil
}

// Deliver moves a Shipped order to Delivered.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return fmt.Errorf("order %s: %w", o.id, err)
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves a Pending or Processing order to Cancelled. Shipped and
// Delivered orders fail with ErrInvalidStateTransition.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return fmt.Errorf("order %s: %w", o.id, err)
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Snapshot returns a read-only projection of the order for external
// consumers. Snapshots are never round-tripped back into a live order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		OrderID:    o.id,
		CustomerID: o.customerID,
		Items:      o.Items(),
		Status:     o.status.String(),
		Total:      o.totalAmount,
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
	}
}

// recalcTotals recomputes tax and total from scratch as a pure function of
// the current state. The total is bounded at zero.
func (o *Order) recalcTotals() {
	subtotal := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Subtotal())
	}

	o.taxAmount = subtotal.Mul(taxRate)
	total := subtotal.Add(o.taxAmount).Add(o.shippingCost).Sub(o.discountApplied)
	if total.IsNegative() {
		total = decimal.Zero
	}
	o.totalAmount = total
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}
