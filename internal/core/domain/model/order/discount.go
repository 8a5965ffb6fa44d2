package order

import (
	"errors"

	"github.com/shopspring/decimal"
)

// minDiscountCodeLength is the shortest code the rule table accepts.
const minDiscountCodeLength = 4

// Discount failures are best-effort by design: callers log them and treat
// the discount as zero rather than failing the operation.
var (
	// ErrDiscountCodeTooShort is returned for empty codes and codes shorter
	// than minDiscountCodeLength.
	ErrDiscountCodeTooShort = errors.New("discount code is too short")

	// ErrUnknownDiscountCode is returned for codes missing from the rule table.
	ErrUnknownDiscountCode = errors.New("unknown discount code")
)

type discountKind int

const (
	// percentageDiscount takes value percent off the current total.
	percentageDiscount discountKind = iota + 1

	// fixedDiscount takes a fixed amount, capped at the current total.
	fixedDiscount

	// shippingDiscount waives the shipping cost when the current total
	// reaches the rule's threshold.
	shippingDiscount
)

// discountRule is one entry of the fixed promotional rule table.
type discountRule struct {
	kind      discountKind
	value     decimal.Decimal
	threshold decimal.Decimal
}

// discountRules returns the fixed promotional code table.
func discountRules() map[string]discountRule {
	return map[string]discountRule{
		"SAVE10":   {kind: percentageDiscount, value: decimal.NewFromInt(10)},
		"SAVE20":   {kind: percentageDiscount, value: decimal.NewFromInt(20)},
		"FLAT50":   {kind: fixedDiscount, value: decimal.NewFromInt(50)},
		"FREESHIP": {kind: shippingDiscount, threshold: decimal.NewFromInt(100)},
	}
}

// apply evaluates the rule against the order's current total, before the new
// discount takes effect. A shipping rule zeroes the order's shipping cost as
// a side effect when the threshold is met.
func (r discountRule) apply(o *Order) decimal.Decimal {
	switch r.kind {
	case percentageDiscount:
		return o.totalAmount.Mul(r.value).Div(decimal.NewFromInt(100))
	case fixedDiscount:
		return decimal.Min(r.value, o.totalAmount)
	case shippingDiscount:
		if o.totalAmount.LessThan(r.threshold) {
			return decimal.Zero
		}
		amount := o.shippingCost
		o.shippingCost = decimal.Zero
		return amount
	default:
		return decimal.Zero
	}
}
