package queries

import (
	"errors"
	"fmt"
	"time"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// Granularity selects the time bucket the sales report trends are grouped
// into.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityAll   Granularity = "all"
)

// Validate checks that the granularity is one of the supported buckets.
func (g Granularity) Validate() error {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityAll:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("granularity",
			fmt.Errorf("%q is not a valid granularity", string(g)))
	}
}

// PeriodKey maps a creation timestamp into this granularity's bucket key:
// "2006-01-02" for day, ISO week year and number like "2026-W05" for week,
// "2006-01" for month, and the literal "all" for the single-bucket report.
func (g Granularity) PeriodKey(t time.Time) string {
	switch g {
	case GranularityDay:
		return t.Format("2006-01-02")
	case GranularityWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case GranularityMonth:
		return t.Format("2006-01")
	default:
		return "all"
	}
}

// GetSalesReportQuery aggregates orders created within an inclusive date
// range into a sales report with per-period trends.
//
// Example:
//
//	query, _ := NewGetSalesReportQuery(from, to, false, GranularityDay)
//	handler := NewGetSalesReportQueryHandler(manager)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, revenue %s\n", report.TotalOrders, report.TotalRevenue)
type GetSalesReportQuery struct {
	from             time.Time
	to               time.Time
	includeCancelled bool
	granularity      Granularity

	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery creates a sales report query over [from, to]
// inclusive by order creation time.
func NewGetSalesReportQuery(
	from, to time.Time,
	includeCancelled bool,
	granularity Granularity,
) (GetSalesReportQuery, error) {
	if from.IsZero() {
		return GetSalesReportQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetSalesReportQuery{}, errs.NewValueIsRequiredError("to")
	}
	if to.Before(from) {
		return GetSalesReportQuery{}, errs.NewValueIsInvalidErrorWithCause("to",
			fmt.Errorf("%s is before from %s", to.Format(time.RFC3339), from.Format(time.RFC3339)))
	}
	if err := granularity.Validate(); err != nil {
		return GetSalesReportQuery{}, err
	}

	return GetSalesReportQuery{
		from:             from,
		to:               to,
		includeCancelled: includeCancelled,
		granularity:      granularity,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// From returns the inclusive range start.
func (q GetSalesReportQuery) From() time.Time {
	return q.from
}

// To returns the inclusive range end.
func (q GetSalesReportQuery) To() time.Time {
	return q.to
}

// IncludeCancelled reports whether cancelled orders contribute to the
// report's totals and trends.
func (q GetSalesReportQuery) IncludeCancelled() bool {
	return q.includeCancelled
}

// Granularity returns the trend bucket size.
func (q GetSalesReportQuery) Granularity() Granularity {
	return q.granularity
}

// TrendBucket is the per-period slice of a sales report.
type TrendBucket struct {
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ProductSales is one entry of a report's top products ranking: the total
// quantity a product sold across the counted orders.
type ProductSales struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// SalesReport is the aggregated answer to a GetSalesReportQuery.
//
// TotalOrders, TotalRevenue, AverageOrderValue, Trends and TopProducts cover
// the orders the report counted (cancelled orders only when requested).
// CancelledOrders always covers the full range, so a report that excludes
// cancelled orders still shows how many were lost; CancellationRate relates
// that count to the counted orders.
type SalesReport struct {
	TotalOrders       int                    `json:"total_orders"`
	TotalRevenue      decimal.Decimal        `json:"total_revenue"`
	CancelledOrders   int                    `json:"cancelled_orders"`
	AverageOrderValue decimal.Decimal        `json:"average_order_value"`
	CancellationRate  decimal.Decimal        `json:"cancellation_rate"`
	Trends            map[string]TrendBucket `json:"trends"`
	TopProducts       []ProductSales         `json:"top_products"`
}
