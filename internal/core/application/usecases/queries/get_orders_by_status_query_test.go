package queries_test

import (
	"testing"

	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersByStatusQueryHandler_Handle(t *testing.T) {
	t.Run("should return snapshots matching the status", func(t *testing.T) {
		manager := services.NewOrderManager()
		addOrder(t, manager, "O1", "C1", "100")
		addOrder(t, manager, "O2", "C1", "100")
		cancelOrder(t, manager, "O2")

		query, err := queries.NewGetOrdersByStatusQuery(order.Cancelled)
		require.NoError(t, err)
		handler := queries.NewGetOrdersByStatusQueryHandler(manager)
		snapshots, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, "O2", snapshots[0].OrderID)
		assert.Equal(t, "Cancelled", snapshots[0].Status)
	})

	t.Run("should return empty slice when no orders match", func(t *testing.T) {
		manager := services.NewOrderManager()
		addOrder(t, manager, "O1", "C1", "100")

		query, err := queries.NewGetOrdersByStatusQuery(order.Cancelled)
		require.NoError(t, err)
		handler := queries.NewGetOrdersByStatusQueryHandler(manager)
		snapshots, err := handler.Handle(t.Context(), query)

		require.NoError(t, err, "an empty filter result is not an error")
		assert.NotNil(t, snapshots)
		assert.Empty(t, snapshots)
	})

	t.Run("should reject invalid status at construction", func(t *testing.T) {
		_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
