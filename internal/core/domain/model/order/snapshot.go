package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a read-only projection of an order for external consumers
// such as analytics and APIs. Timestamps serialize as RFC 3339.
//
// A Snapshot is detached from the live order: it is never validated or
// converted back into an Order by this core.
type Snapshot struct {
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	Items      []LineItem      `json:"items"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
