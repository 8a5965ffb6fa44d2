package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)
	return address
}

func testProduct(t *testing.T, id, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Widget "+id, decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	return p
}

// newManagerWithOrder returns a registry holding a single pending order O1
// for customer C1.
func newManagerWithOrder(t *testing.T) *services.OrderManager {
	t.Helper()
	manager := services.NewOrderManager()
	_, err := manager.CreateOrder("O1", "C1", testAddress(t))
	require.NoError(t, err)
	return manager
}

func newCatalogWith(t *testing.T, products ...*product.Product) *services.ProductCatalog {
	t.Helper()
	catalog := services.NewProductCatalog()
	for _, p := range products {
		require.NoError(t, catalog.Add(p))
	}
	return catalog
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
