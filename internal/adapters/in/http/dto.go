package http

import (
	"github.com/shopspring/decimal"
)

// AddressRequest carries the shipping address fields of an order creation
// request. Country is optional and defaults server-side.
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. OrderID is optional;
// when omitted the server generates one.
type CreateOrderRequest struct {
	OrderID         string         `json:"order_id"`
	CustomerID      string         `json:"customer_id"`
	ShippingAddress AddressRequest `json:"shipping_address"`
}

// CreateOrderResponse reports the identifier of the registered order.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// CreateProductRequest is the body of POST /api/v1/products. ProductID is
// optional; when omitted the server generates one.
type CreateProductRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

// CreateProductResponse reports the identifier of the registered product.
type CreateProductResponse struct {
	ProductID string `json:"product_id"`
}

// UpdateStockRequest is the body of POST /api/v1/products/:productID/stock.
// Delta may be negative.
type UpdateStockRequest struct {
	Delta int `json:"delta"`
}

// UpdateStockResponse reports the stock level after the adjustment.
type UpdateStockResponse struct {
	Stock int `json:"stock"`
}

// AddItemRequest is the body of POST /api/v1/orders/:orderID/items.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// RemoveItemResponse reports whether a removal occurred.
type RemoveItemResponse struct {
	Removed bool `json:"removed"`
}

// ApplyDiscountRequest is the body of POST /api/v1/orders/:orderID/discount.
type ApplyDiscountRequest struct {
	Code string `json:"code"`
}

// ApplyDiscountResponse reports the discount amount applied; zero when the
// code was rejected.
type ApplyDiscountResponse struct {
	DiscountApplied decimal.Decimal `json:"discount_applied"`
}

// ProcessPaymentRequest is the body of POST /api/v1/orders/:orderID/payment.
// CustomerEmail is optional; when present a confirmation is sent after a
// successful charge.
type ProcessPaymentRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	CustomerEmail string          `json:"customer_email"`
}

// ProcessPaymentResponse reports whether the charge succeeded.
type ProcessPaymentResponse struct {
	Paid bool `json:"paid"`
}

// ShipOrderRequest is the body of POST /api/v1/orders/:orderID/ship.
type ShipOrderRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// RevenueResponse is the body of GET /api/v1/reports/revenue.
type RevenueResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
