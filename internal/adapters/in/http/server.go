package http

import (
	"errors"
	"net/http"
	"time"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/model/product"
	"retail/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server exposes the order lifecycle over REST. It coordinates between HTTP
// handlers and application use cases; domain errors are mapped to a uniform
// error body.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	addItemHandler        commands.AddItemCommandHandler
	removeItemHandler     commands.RemoveItemCommandHandler
	applyDiscountHandler  commands.ApplyDiscountCommandHandler
	processPaymentHandler commands.ProcessPaymentCommandHandler
	shipOrderHandler      commands.ShipOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	createProductHandler  commands.CreateProductCommandHandler
	updateStockHandler    commands.UpdateStockCommandHandler

	// Query handlers
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getTotalRevenueHandler   queries.GetTotalRevenueQueryHandler
	getSalesReportHandler    queries.GetSalesReportQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	applyDiscountHandler commands.ApplyDiscountCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateStockHandler commands.UpdateStockCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getTotalRevenueHandler queries.GetTotalRevenueQueryHandler,
	getSalesReportHandler queries.GetSalesReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		addItemHandler:           addItemHandler,
		removeItemHandler:        removeItemHandler,
		applyDiscountHandler:     applyDiscountHandler,
		processPaymentHandler:    processPaymentHandler,
		shipOrderHandler:         shipOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		createProductHandler:     createProductHandler,
		updateStockHandler:       updateStockHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getTotalRevenueHandler:   getTotalRevenueHandler,
		getSalesReportHandler:    getSalesReportHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.POST("/orders/:orderID/items", s.AddItem)
	api.DELETE("/orders/:orderID/items/:productID", s.RemoveItem)
	api.POST("/orders/:orderID/discount", s.ApplyDiscount)
	api.POST("/orders/:orderID/payment", s.ProcessPayment)
	api.POST("/orders/:orderID/ship", s.ShipOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/products", s.CreateProduct)
	api.POST("/products/:productID/stock", s.UpdateStock)

	api.GET("/customers/:customerID/orders", s.GetCustomerOrders)
	api.GET("/reports/revenue", s.GetTotalRevenue)
	api.GET("/reports/sales", s.GetSalesReport)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID := request.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
	}

	address, err := kernel.NewAddress(
		request.ShippingAddress.Street,
		request.ShippingAddress.City,
		request.ShippingAddress.State,
		request.ShippingAddress.Zip,
		request.ShippingAddress.Country,
	)
	if err != nil {
		return badRequest(ctx, "invalid shipping address: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, request.CustomerID, address)
	if err != nil {
		return badRequest(ctx, "invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID})
}

// AddItem handles POST /api/v1/orders/:orderID/items.
func (s *Server) AddItem(ctx echo.Context) error {
	var request AddItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddItemCommand(ctx.Param("orderID"), request.ProductID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "invalid item data: "+err.Error())
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/:orderID/items/:productID.
func (s *Server) RemoveItem(ctx echo.Context) error {
	cmd, err := commands.NewRemoveItemCommand(ctx.Param("orderID"), ctx.Param("productID"))
	if err != nil {
		return badRequest(ctx, "invalid item data: "+err.Error())
	}

	removed, err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RemoveItemResponse{Removed: removed})
}

// ApplyDiscount handles POST /api/v1/orders/:orderID/discount.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	var request ApplyDiscountRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewApplyDiscountCommand(ctx.Param("orderID"), request.Code)
	if err != nil {
		return badRequest(ctx, "invalid discount data: "+err.Error())
	}

	amount, err := s.applyDiscountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ApplyDiscountResponse{DiscountApplied: amount})
}

// ProcessPayment handles POST /api/v1/orders/:orderID/payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	var request ProcessPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewProcessPaymentCommand(
		ctx.Param("orderID"), request.PaymentMethod, request.Amount, request.CustomerEmail)
	if err != nil {
		return badRequest(ctx, "invalid payment data: "+err.Error())
	}

	paid, err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProcessPaymentResponse{Paid: paid})
}

// ShipOrder handles POST /api/v1/orders/:orderID/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	var request ShipOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(ctx.Param("orderID"), request.TrackingNumber)
	if err != nil {
		return badRequest(ctx, "invalid shipment data: "+err.Error())
	}

	if err = s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID := request.ProductID
	if productID == "" {
		productID = uuid.NewString()
	}

	cmd, err := commands.NewCreateProductCommand(productID, request.Name, request.Price, request.Stock)
	if err != nil {
		return badRequest(ctx, "invalid product data: "+err.Error())
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateProductResponse{ProductID: productID})
}

// UpdateStock handles POST /api/v1/products/:productID/stock.
func (s *Server) UpdateStock(ctx echo.Context) error {
	var request UpdateStockRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateStockCommand(ctx.Param("productID"), request.Delta)
	if err != nil {
		return badRequest(ctx, "invalid stock data: "+err.Error())
	}

	stock, err := s.updateStockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateStockResponse{Stock: stock})
}

// GetCustomerOrders handles GET /api/v1/customers/:customerID/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "invalid customer id: "+err.Error())
	}

	snapshots, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=Pending.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "invalid status: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+err.Error())
	}

	snapshots, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// GetTotalRevenue handles GET /api/v1/reports/revenue.
func (s *Server) GetTotalRevenue(ctx echo.Context) error {
	revenue, err := s.getTotalRevenueHandler.Handle(
		ctx.Request().Context(), queries.NewGetTotalRevenueQuery())
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RevenueResponse{TotalRevenue: revenue})
}

// GetSalesReport handles GET /api/v1/reports/sales with from, to,
// granularity and include_cancelled query parameters. Dates are accepted as
// 2006-01-02; the to date covers its whole day.
func (s *Server) GetSalesReport(ctx echo.Context) error {
	from, err := time.Parse(time.DateOnly, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "invalid from date: "+err.Error())
	}
	to, err := time.Parse(time.DateOnly, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "invalid to date: "+err.Error())
	}
	to = to.Add(24*time.Hour - time.Nanosecond)

	granularity := queries.Granularity(ctx.QueryParam("granularity"))
	if granularity == "" {
		granularity = queries.GranularityDay
	}
	includeCancelled := ctx.QueryParam("include_cancelled") == "true"

	query, err := queries.NewGetSalesReportQuery(from, to, includeCancelled, granularity)
	if err != nil {
		return badRequest(ctx, "invalid report parameters: "+err.Error())
	}

	report, err := s.getSalesReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapDomainError translates domain failures into API status codes: absent
// objects map to 404, identity and state conflicts to 409, violated
// preconditions to 400, everything else to 500.
func mapDomainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrInvalidStateTransition):
		status = http.StatusConflict
	case errors.Is(err, order.ErrOutOfStock),
		errors.Is(err, order.ErrInsufficientPayment),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
