package order

import "github.com/shopspring/decimal"

// LineItem is a priced quantity of one product within an order. The unit
// price is snapshotted at add time: later changes to the source product's
// price never retroactively affect existing line items.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns unit price multiplied by quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
