package services

import (
	"sync"

	"retail/internal/core/domain/model/product"
	"retail/internal/pkg/errs"
)

// ProductCatalog is the in-memory catalog the order core resolves products
// from. It mirrors the registry discipline of OrderManager: unique IDs,
// RWMutex-guarded mapping, lookup failures as ObjectNotFoundError.
type ProductCatalog struct {
	mu       sync.RWMutex
	products map[string]*product.Product
}

// NewProductCatalog creates an empty catalog.
func NewProductCatalog() *ProductCatalog {
	return &ProductCatalog{
		products: make(map[string]*product.Product),
	}
}

// Add registers a product under its ID. It fails with an
// ObjectAlreadyExistsError when the ID is already present.
func (c *ProductCatalog) Add(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.products[p.ID()]; exists {
		return errs.NewObjectAlreadyExistsError("productID", p.ID())
	}
	c.products[p.ID()] = p
	return nil
}

// Get retrieves a product by ID. It fails with an ObjectNotFoundError when
// the ID is absent.
func (c *ProductCatalog) Get(productID string) (*product.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, exists := c.products[productID]
	if !exists {
		return nil, errs.NewObjectNotFoundError("productID", productID)
	}
	return p, nil
}

// WithProduct runs fn against the product registered under productID while
// holding the catalog write lock, serializing stock mutations against
// concurrent lookups. It fails with an ObjectNotFoundError when the ID is
// absent; any error from fn is returned unmodified.
func (c *ProductCatalog) WithProduct(productID string, fn func(*product.Product) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, exists := c.products[productID]
	if !exists {
		return errs.NewObjectNotFoundError("productID", productID)
	}
	return fn(p)
}

// Len returns the number of registered products.
func (c *ProductCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
