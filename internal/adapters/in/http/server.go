// Package http is the inbound REST adapter. It translates HTTP requests
// into commands and queries, and the error taxonomy into status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	requestReturnHandler     commands.RequestReturnCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	findByPaymentHandler   queries.FindOrderByPaymentQueryHandler

	logger *slog.Logger
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	requestReturnHandler commands.RequestReturnCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	findByPaymentHandler queries.FindOrderByPaymentQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		requestReturnHandler:     requestReturnHandler,
		getOrderHandler:          getOrderHandler,
		getOrderHistoryHandler:   getOrderHistoryHandler,
		findByPaymentHandler:     findByPaymentHandler,
		logger:                   logger.With("component", "HTTPServer"),
	}
}

// RegisterRoutes mounts the order API under /api/v1/order.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/order")
	g.POST("", s.CreateOrder)
	g.GET("", s.GetOrderHistory)
	g.GET("/:orderId", s.GetOrder)
	g.GET("/by-payment/:paymentId", s.FindOrderByPaymentID)
	g.PUT("/:orderId/status", s.UpdateOrderStatus)
	g.POST("/:orderId/cancel", s.CancelOrder)
	g.POST("/:orderId/return", s.RequestReturn)
}

// CreateOrder handles POST /api/v1/order.
func (s *Server) CreateOrder(c echo.Context) error {
	caller, err := callerFromRequest(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	params, err := createParamsFromRequest(caller, req)
	if err != nil {
		return s.errorResponse(c, err)
	}
	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return s.errorResponse(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Order created successfully",
		Data:    aggregateResponse(created),
	})
}

// GetOrder handles GET /api/v1/order/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	caller, err := callerFromRequest(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, caller.UserID, caller.TenantID, caller.Roles)
	if err != nil {
		return s.errorResponse(c, err)
	}

	view, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    viewResponse(view),
	})
}

// GetOrderHistory handles GET /api/v1/order.
func (s *Server) GetOrderHistory(c echo.Context) error {
	caller, err := callerFromRequest(c)
	if err != nil {
		return err
	}

	page := 0
	if raw := c.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page parameter")
		}
	}
	size := 0
	if raw := c.QueryParam("size"); raw != "" {
		if size, err = strconv.Atoi(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid size parameter")
		}
	}

	var statusFilter *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return s.errorResponse(c, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrderHistoryQuery(
		caller.UserID, caller.TenantID, statusFilter, page, size,
		queries.ParseSortSpec(c.QueryParam("sort")))
	if err != nil {
		return s.errorResponse(c, err)
	}

	result, err := s.getOrderHistoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}

	resp := OrderHistoryPageResponse{
		Orders:     make([]OrderSummaryResponse, 0, len(result.Orders)),
		TotalCount: result.TotalCount,
		Page:       result.Page,
		Size:       result.Size,
	}
	for _, summary := range result.Orders {
		resp.Orders = append(resp.Orders, summaryResponse(summary))
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Order history retrieved successfully",
		Data:    resp,
	})
}

// FindOrderByPaymentID handles GET /api/v1/order/by-payment/:paymentId.
func (s *Server) FindOrderByPaymentID(c echo.Context) error {
	caller, err := callerFromRequest(c)
	if err != nil {
		return err
	}
	paymentID, err := kernel.UUIDFromString(c.Param("paymentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payment id")
	}

	query, err := queries.NewFindOrderByPaymentQuery(paymentID, caller.UserID, caller.TenantID)
	if err != nil {
		return s.errorResponse(c, err)
	}

	summary, err := s.findByPaymentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	if summary == nil {
		return c.JSON(http.StatusOK, Envelope{
			Success: true,
			Message: "No order found with the given payment ID",
		})
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Order found successfully",
		Data:    summaryResponse(*summary),
	})
}

// UpdateOrderStatus handles PUT /api/v1/order/:orderId/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	caller, err := callerFromRequest(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	newStatus, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.errorResponse(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, caller.UserID, caller.TenantID, caller.Roles, newStatus, req.Reason)
	if err != nil {
		return s.errorResponse(c, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Order status updated successfully",
		Data:    aggregateResponse(updated),
	})
}

// CancelOrder handles POST /api/v1/order/:orderId/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	caller, err := callerFromRequest(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req CancelOrderRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(
		orderID, caller.UserID, caller.TenantID, caller.Roles, req.Reason)
	if err != nil {
		return s.errorResponse(c, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Order cancelled successfully",
		Data:    aggregateResponse(cancelled),
	})
}

// RequestReturn handles POST /api/v1/order/:orderId/return.
func (s *Server) RequestReturn(c echo.Context) error {
	caller, err := callerFromRequest(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req ReturnOrderRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRequestReturnCommand(orderID, caller.UserID, caller.TenantID, req.Reason)
	if err != nil {
		return s.errorResponse(c, err)
	}

	returned, err := s.requestReturnHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Return requested successfully",
		Data:    aggregateResponse(returned),
	})
}

// errorResponse maps the error taxonomy to HTTP status codes.
func (s *Server) errorResponse(c echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidOperation):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		status = http.StatusBadRequest
	default:
		s.logger.ErrorContext(c.Request().Context(), "unhandled error", "error", err)
		return c.JSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Message: "Internal server error",
		})
	}

	return c.JSON(status, Envelope{
		Success: false,
		Message: err.Error(),
	})
}

func createParamsFromRequest(caller Caller, req CreateOrderRequest) (commands.CreateOrderParams, error) {
	shippingAddressID, err := kernel.UUIDFromString(req.ShippingAddressID)
	if err != nil {
		return commands.CreateOrderParams{}, errs.NewValueIsInvalidErrorWithCause("shipping_address_id", err)
	}
	paymentID, err := kernel.UUIDFromString(req.PaymentID)
	if err != nil {
		return commands.CreateOrderParams{}, errs.NewValueIsInvalidErrorWithCause("payment_id", err)
	}

	items := make([]commands.CreateOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return commands.CreateOrderParams{}, errs.NewValueIsInvalidErrorWithCause("product_id", itemErr)
		}
		items = append(items, commands.CreateOrderItemInput{
			ProductID:   productID,
			SKU:         item.SKU,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return commands.CreateOrderParams{
		UserID:            caller.UserID,
		TenantID:          caller.TenantID,
		ShippingAddressID: shippingAddressID,
		PaymentID:         &paymentID,
		Items:             items,
		Subtotal:          req.Subtotal,
		DiscountAmount:    req.DiscountAmount,
		TaxAmount:         req.TaxAmount,
		ShippingCost:      req.ShippingCost,
		Total:             req.Total,
		Currency:          req.Currency,
		Notes:             req.Notes,
	}, nil
}
