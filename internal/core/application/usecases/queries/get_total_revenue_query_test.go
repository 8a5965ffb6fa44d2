package queries_test

import (
	"testing"

	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTotalRevenueQueryHandler_Handle(t *testing.T) {
	t.Run("should sum totals including cancelled orders", func(t *testing.T) {
		manager := services.NewOrderManager()
		addOrder(t, manager, "O1", "C1", "100") // 108
		addOrder(t, manager, "O2", "C2", "50")  // 54
		cancelOrder(t, manager, "O2")

		handler := queries.NewGetTotalRevenueQueryHandler(manager)
		revenue, err := handler.Handle(t.Context(), queries.NewGetTotalRevenueQuery())

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(162).Equal(revenue), "got %s", revenue)
	})

	t.Run("should be zero for empty registry", func(t *testing.T) {
		handler := queries.NewGetTotalRevenueQueryHandler(services.NewOrderManager())

		revenue, err := handler.Handle(t.Context(), queries.NewGetTotalRevenueQuery())

		require.NoError(t, err)
		assert.True(t, revenue.IsZero())
	})
}
