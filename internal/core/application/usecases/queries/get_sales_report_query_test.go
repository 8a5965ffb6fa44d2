package queries_test

import (
	"testing"
	"time"

	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGranularity_PeriodKey(t *testing.T) {
	// Monday of ISO week 2 of 2026.
	ts := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		granularity queries.Granularity
		want        string
	}{
		{queries.GranularityDay, "2026-01-05"},
		{queries.GranularityWeek, "2026-W02"},
		{queries.GranularityMonth, "2026-01"},
		{queries.GranularityAll, "all"},
	}
	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.granularity.PeriodKey(ts))
		})
	}
}

func TestGranularity_PeriodKey_ISOWeekYearBoundary(t *testing.T) {
	// 2027-01-01 falls in ISO week 53 of 2026.
	ts := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-W53", queries.GranularityWeek.PeriodKey(ts))
}

func TestNewGetSalesReportQuery(t *testing.T) {
	now := time.Now()

	t.Run("should reject inverted range", func(t *testing.T) {
		_, err := queries.NewGetSalesReportQuery(now, now.Add(-time.Hour), false,
			queries.GranularityDay)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero boundaries", func(t *testing.T) {
		_, err := queries.NewGetSalesReportQuery(time.Time{}, now, false,
			queries.GranularityDay)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unsupported granularity", func(t *testing.T) {
		_, err := queries.NewGetSalesReportQuery(now.Add(-time.Hour), now, false,
			queries.Granularity("year"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetSalesReportQueryHandler_Handle(t *testing.T) {
	reportRange := func(t *testing.T, includeCancelled bool) (time.Time, time.Time, bool) {
		t.Helper()
		now := time.Now()
		return now.Add(-time.Hour), now.Add(time.Hour), includeCancelled
	}

	newManager := func(t *testing.T) *services.OrderManager {
		t.Helper()
		manager := services.NewOrderManager()
		addOrder(t, manager, "O1", "C1", "100") // 108
		addOrder(t, manager, "O2", "C1", "200") // 216
		addOrder(t, manager, "O3", "C2", "50")  // 54, cancelled below
		cancelOrder(t, manager, "O3")
		return manager
	}

	t.Run("should aggregate non-cancelled orders by default", func(t *testing.T) {
		manager := newManager(t)
		from, to, include := reportRange(t, false)
		query, err := queries.NewGetSalesReportQuery(from, to, include, queries.GranularityDay)
		require.NoError(t, err)

		handler := queries.NewGetSalesReportQueryHandler(manager)
		report, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, 2, report.TotalOrders)
		assert.True(t, decimal.NewFromInt(324).Equal(report.TotalRevenue), "got %s", report.TotalRevenue)
		assert.Equal(t, 1, report.CancelledOrders)
		assert.True(t, decimal.NewFromInt(162).Equal(report.AverageOrderValue))
		// 1 cancelled against the 2 counted orders.
		assert.True(t, decimal.NewFromInt(1).Div(decimal.NewFromInt(2)).Equal(report.CancellationRate),
			"got %s", report.CancellationRate)

		key := queries.GranularityDay.PeriodKey(time.Now())
		require.Contains(t, report.Trends, key)
		assert.Equal(t, 2, report.Trends[key].Orders)
		assert.True(t, decimal.NewFromInt(324).Equal(report.Trends[key].Revenue))

		// The cancelled order's product must not rank.
		require.Len(t, report.TopProducts, 2)
		assert.Equal(t, "P-O1", report.TopProducts[0].ProductID)
		assert.Equal(t, "P-O2", report.TopProducts[1].ProductID)
	})

	t.Run("should include cancelled orders when requested", func(t *testing.T) {
		manager := newManager(t)
		from, to, include := reportRange(t, true)
		query, err := queries.NewGetSalesReportQuery(from, to, include, queries.GranularityAll)
		require.NoError(t, err)

		handler := queries.NewGetSalesReportQueryHandler(manager)
		report, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, 3, report.TotalOrders)
		assert.True(t, decimal.NewFromInt(378).Equal(report.TotalRevenue))
		assert.Equal(t, 1, report.CancelledOrders)
		assert.True(t, decimal.NewFromInt(1).Div(decimal.NewFromInt(3)).Equal(report.CancellationRate))
		require.Contains(t, report.Trends, "all")
		assert.Equal(t, 3, report.Trends["all"].Orders)
		assert.Len(t, report.TopProducts, 3)
	})

	t.Run("should rank top products by quantity sold", func(t *testing.T) {
		manager := services.NewOrderManager()
		addOrder(t, manager, "O1", "C1", "10") // 1x P-O1
		addItem(t, manager, "O1", "P9", "Gadget", "5", 4)
		_, err := manager.CreateOrder("O2", "C1", testAddress(t))
		require.NoError(t, err)
		addItem(t, manager, "O2", "P9", "Gadget", "5", 2)

		from, to, include := reportRange(t, false)
		query, err := queries.NewGetSalesReportQuery(from, to, include, queries.GranularityAll)
		require.NoError(t, err)

		handler := queries.NewGetSalesReportQueryHandler(manager)
		report, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, report.TopProducts, 2)
		assert.Equal(t, "P9", report.TopProducts[0].ProductID)
		assert.Equal(t, "Gadget", report.TopProducts[0].Name)
		assert.Equal(t, 6, report.TopProducts[0].Quantity)
		assert.Equal(t, 1, report.TopProducts[1].Quantity)
	})

	t.Run("should yield zeroed report outside the range", func(t *testing.T) {
		manager := newManager(t)
		now := time.Now()
		query, err := queries.NewGetSalesReportQuery(
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), true, queries.GranularityDay)
		require.NoError(t, err)

		handler := queries.NewGetSalesReportQueryHandler(manager)
		report, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Zero(t, report.TotalOrders)
		assert.Zero(t, report.CancelledOrders)
		assert.True(t, report.TotalRevenue.IsZero())
		assert.True(t, report.AverageOrderValue.IsZero())
		assert.True(t, report.CancellationRate.IsZero())
		assert.Empty(t, report.Trends)
	})
}
