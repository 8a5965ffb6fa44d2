package product

import (
	"errors"
	"fmt"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory function.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is returned when a stock mutation would drive the
	// stock level negative. The mutation is rejected whole; stock is left
	// unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents a catalog item with a price and a stock level.
//
// Invariants:
//   - price is never negative
//   - stock is never negative after any mutation; a mutation that would
//     drive it negative fails without partial effect
//   - id is immutable once constructed
type Product struct {
	// id uniquely identifies the product within the catalog
	id string

	// name is the display name used for line-item snapshots
	name string

	// price is the current unit price
	price decimal.Decimal

	// stock is the units currently on hand
	stock int

	guard guard.ConstructorGuard
}

// NewProduct creates a validated Product. The id and name are required, the
// price must be non-negative, and the initial stock must not be negative.
func NewProduct(id, name string, price decimal.Decimal, stock int) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was constructed via NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() string {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the units currently on hand.
func (p *Product) Stock() int {
	return p.stock
}

// IsAvailable reports whether at least quantity units are on hand.
// It has no side effects.
func (p *Product) IsAvailable(quantity int) bool {
	return p.stock >= quantity
}

// UpdateStock adjusts the stock level by delta, which may be negative.
// It fails with ErrInsufficientStock when the result would be negative,
// leaving the stock unchanged.
func (p *Product) UpdateStock(delta int) error {
	next := p.stock + delta
	if next < 0 {
		return fmt.Errorf("product %s: stock %d with delta %d: %w",
			p.id, p.stock, delta, ErrInsufficientStock)
	}

	p.stock = next
	return nil
}

func (p *Product) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	p.stock = stock
	return nil
}
