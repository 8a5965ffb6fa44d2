package queries

import (
	"context"
	"sort"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// GetSalesReportQueryHandler aggregates registry snapshots into time-bucketed
// sales reports.
type GetSalesReportQueryHandler struct {
	manager *services.OrderManager
}

// NewGetSalesReportQueryHandler creates a handler bound to the order
// registry.
func NewGetSalesReportQueryHandler(manager *services.OrderManager) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{manager: manager}
}

// Handle builds the sales report for the queried range. An empty range
// yields a zeroed report with an empty trends map.
func (h GetSalesReportQueryHandler) Handle(
	_ context.Context,
	query GetSalesReportQuery,
) (SalesReport, error) {
	if err := query.Validate(); err != nil {
		return SalesReport{}, err
	}

	report := SalesReport{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		CancellationRate:  decimal.Zero,
		Trends:            make(map[string]TrendBucket),
		TopProducts:       make([]ProductSales, 0),
	}

	productIndex := make(map[string]int)
	for _, snapshot := range h.manager.Snapshots() {
		if snapshot.CreatedAt.Before(query.From()) || snapshot.CreatedAt.After(query.To()) {
			continue
		}

		if snapshot.Status == order.Cancelled.String() {
			report.CancelledOrders++
			if !query.IncludeCancelled() {
				continue
			}
		}

		report.TotalOrders++
		report.TotalRevenue = report.TotalRevenue.Add(snapshot.Total)

		key := query.Granularity().PeriodKey(snapshot.CreatedAt)
		bucket := report.Trends[key]
		bucket.Orders++
		bucket.Revenue = bucket.Revenue.Add(snapshot.Total)
		report.Trends[key] = bucket

		for _, item := range snapshot.Items {
			idx, seen := productIndex[item.ProductID]
			if !seen {
				idx = len(report.TopProducts)
				productIndex[item.ProductID] = idx
				report.TopProducts = append(report.TopProducts, ProductSales{
					ProductID: item.ProductID,
					Name:      item.Name,
				})
			}
			report.TopProducts[idx].Quantity += item.Quantity
		}
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue.
			Div(decimal.NewFromInt(int64(report.TotalOrders)))
		report.CancellationRate = decimal.NewFromInt(int64(report.CancelledOrders)).
			Div(decimal.NewFromInt(int64(report.TotalOrders)))
	}

	sort.SliceStable(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].Quantity > report.TopProducts[j].Quantity
	})

	return report, nil
}
