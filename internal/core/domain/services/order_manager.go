package services

import (
	"sync"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderManager is the identity-indexed registry of all known orders.
//
// Key invariants:
//   - Every key equals the ID of its mapped order
//   - Order IDs are unique; duplicate registration is rejected
//   - Registration order is preserved for deterministic iteration in
//     aggregate queries
//
// The registry guards its mapping with an RWMutex: mutations run through the
// write lock so there is at most one in-flight mutation per order, and
// aggregate queries iterate a stable view under the read lock. The total
// recomputation inside an order reads and writes multiple fields
// non-atomically, so per-order mutations must not interleave.
//
// Example usage:
//
//	manager := services.NewOrderManager()
//	o, err := manager.CreateOrder("O1", "C1", address)
//	if err != nil {
//	    // Handle duplicate registration
//	}
//	err = manager.WithOrder("O1", func(o *order.Order) error {
//	    return o.AddItem(laptop, 1)
//	})
type OrderManager struct {
	mu sync.RWMutex

	// orders maps order ID to the registered order
	orders map[string]*order.Order

	// ids preserves registration order for deterministic iteration
	ids []string
}

// NewOrderManager creates an empty registry. One registry is constructed per
// process and injected into callers; there is no ambient singleton.
func NewOrderManager() *OrderManager {
	return &OrderManager{
		orders: make(map[string]*order.Order),
	}
}

// CreateOrder constructs a Pending order and registers it under its ID.
// It fails with an ObjectAlreadyExistsError (errs.ErrObjectAlreadyExists)
// when the ID is already registered, regardless of how many other orders
// exist.
func (m *OrderManager) CreateOrder(orderID, customerID string, shippingAddress kernel.Address) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.orders[orderID]; exists {
		return nil, errs.NewObjectAlreadyExistsError("orderID", orderID)
	}

	o, err := order.NewOrder(orderID, customerID, shippingAddress)
	if err != nil {
		return nil, err
	}

	m.orders[orderID] = o
	m.ids = append(m.ids, orderID)
	return o, nil
}

// GetOrder retrieves a registered order by ID. It fails with an
// ObjectNotFoundError (errs.ErrObjectNotFound) when the ID is absent.
func (m *OrderManager) GetOrder(orderID string) (*order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, exists := m.orders[orderID]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	return o, nil
}

// WithOrder runs a mutation against the order registered under orderID while
// holding the registry write lock, serializing mutations per order. It fails
// with an ObjectNotFoundError when the ID is absent; any error from fn is
// returned unmodified.
func (m *OrderManager) WithOrder(orderID string, fn func(*order.Order) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, exists := m.orders[orderID]
	if !exists {
		return errs.NewObjectNotFoundError("orderID", orderID)
	}
	return fn(o)
}

// GetCustomerOrders returns all orders belonging to the customer, in
// registration order. The slice is empty when the customer has none.
// The returned aggregates are live; callers reading them while mutations
// may run concurrently must use CustomerSnapshots instead.
func (m *OrderManager) GetCustomerOrders(customerID string) []*order.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*order.Order, 0)
	for _, id := range m.ids {
		if o := m.orders[id]; o.CustomerID() == customerID {
			matched = append(matched, o)
		}
	}
	return matched
}

// GetOrdersByStatus returns all orders currently in the given status, in
// registration order. The slice is empty when none match; absence is never
// an error. The returned aggregates are live; callers reading them while
// mutations may run concurrently must use StatusSnapshots instead.
func (m *OrderManager) GetOrdersByStatus(status order.Status) []*order.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*order.Order, 0)
	for _, id := range m.ids {
		if o := m.orders[id]; o.Status() == status {
			matched = append(matched, o)
		}
	}
	return matched
}

// TotalRevenue sums the total amount over every registered order.
// Cancelled orders are included; callers relying on realized revenue must
// filter by status themselves.
func (m *OrderManager) TotalRevenue() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	for _, id := range m.ids {
		total = total.Add(m.orders[id].TotalAmount())
	}
	return total
}

// Snapshots projects every registered order into a detached snapshot, in
// registration order. The result is safe to hand to analytics and export
// consumers while mutations continue.
func (m *OrderManager) Snapshots() []order.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshots := make([]order.Snapshot, 0, len(m.ids))
	for _, id := range m.ids {
		snapshots = append(snapshots, m.orders[id].Snapshot())
	}
	return snapshots
}

// CustomerSnapshots projects the customer's orders into detached snapshots,
// in registration order. Match and projection both happen under the read
// lock, so the result is consistent even while mutations run concurrently.
func (m *OrderManager) CustomerSnapshots(customerID string) []order.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshots := make([]order.Snapshot, 0)
	for _, id := range m.ids {
		if o := m.orders[id]; o.CustomerID() == customerID {
			snapshots = append(snapshots, o.Snapshot())
		}
	}
	return snapshots
}

// StatusSnapshots projects orders currently in the given status into
// detached snapshots, in registration order. Match and projection both
// happen under the read lock, so the result is consistent even while
// mutations run concurrently.
func (m *OrderManager) StatusSnapshots(status order.Status) []order.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshots := make([]order.Snapshot, 0)
	for _, id := range m.ids {
		if o := m.orders[id]; o.Status() == status {
			snapshots = append(snapshots, o.Snapshot())
		}
	}
	return snapshots
}

// Len returns the number of registered orders.
func (m *OrderManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ids)
}
