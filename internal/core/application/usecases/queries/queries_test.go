package queries_test

import (
	"testing"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
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

// addOrder registers an order with a single line item priced so the total
// lands at price * 1.08.
func addOrder(t *testing.T, manager *services.OrderManager, orderID, customerID, price string) {
	t.Helper()
	_, err := manager.CreateOrder(orderID, customerID, testAddress(t))
	require.NoError(t, err)
	p, err := product.NewProduct("P-"+orderID, "Widget", decimal.RequireFromString(price), 100)
	require.NoError(t, err)
	require.NoError(t, manager.WithOrder(orderID, func(o *order.Order) error {
		return o.AddItem(p, 1)
	}))
}

// addItem appends quantity units of a product to an already registered order.
func addItem(t *testing.T, manager *services.OrderManager, orderID, productID, name, price string, quantity int) {
	t.Helper()
	p, err := product.NewProduct(productID, name, decimal.RequireFromString(price), 100)
	require.NoError(t, err)
	require.NoError(t, manager.WithOrder(orderID, func(o *order.Order) error {
		return o.AddItem(p, quantity)
	}))
}

func cancelOrder(t *testing.T, manager *services.OrderManager, orderID string) {
	t.Helper()
	require.NoError(t, manager.WithOrder(orderID, func(o *order.Order) error {
		return o.Cancel()
	}))
}
