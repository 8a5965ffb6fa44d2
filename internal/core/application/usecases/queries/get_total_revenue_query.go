package queries

import (
	"errors"

	"retail/internal/pkg/guard"
)

var ErrGetTotalRevenueQueryIsNotConstructed = errors.New(
	"GetTotalRevenueQuery must be created via NewGetTotalRevenueQuery constructor",
)

// GetTotalRevenueQuery retrieves the sum of order totals across the whole
// registry. Cancelled orders are included in the sum.
type GetTotalRevenueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTotalRevenueQuery creates a parameterless revenue query.
func NewGetTotalRevenueQuery() GetTotalRevenueQuery {
	return GetTotalRevenueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTotalRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalRevenueQueryIsNotConstructed)
}
