// Package http exposes the order lifecycle over a REST API built on echo.
// Handlers translate requests into commands and queries and map domain
// errors onto HTTP status codes.
package http

import (
	"context"
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrderHandler processes order creation commands.
type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

// TransitionOrderHandler processes state transition commands.
type TransitionOrderHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error)
}

// RemoveOrderHandler processes order removal commands.
type RemoveOrderHandler interface {
	Handle(ctx context.Context, cmd commands.RemoveOrderCommand) error
}

// GetOrderHandler serves single-order reads.
type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

// ListOrdersHandler serves order list reads.
type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.GetOrderQueryResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     CreateOrderHandler
	transitionOrderHandler TransitionOrderHandler
	removeOrderHandler     RemoveOrderHandler
	getOrderHandler        GetOrderHandler
	listOrdersHandler      ListOrdersHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	transitionOrderHandler TransitionOrderHandler,
	removeOrderHandler RemoveOrderHandler,
	getOrderHandler GetOrderHandler,
	listOrdersHandler ListOrdersHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		removeOrderHandler:     removeOrderHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
	}
}

// RegisterRoutes mounts all order routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/state", s.TransitionOrderState)
	api.DELETE("/orders/:id", s.RemoveOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order for an
// existing customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer ID: "+req.CustomerID)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, req.Details)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered by
// the search query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery(ctx.QueryParam("search"))

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, view := range orders {
		response[i] = orderResponseFromReadModel(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its
// customer.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+ctx.Param("id"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(view))
}

// TransitionOrderState handles PATCH /api/v1/orders/:id/state - requests a
// state transition for an order.
func (s *Server) TransitionOrderState(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+ctx.Param("id"))
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	targetState, err := order.StateFromString(req.State)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unknown target state: "+req.State)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, targetState)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// RemoveOrder handles DELETE /api/v1/orders/:id - removes an order.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+ctx.Param("id"))
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RemoveOrderResponse{Message: "Order deleted successfully"})
}

// domainErrorResponse maps domain errors onto HTTP status codes: validation
// and denied transitions become 400, missing objects 404, lost optimistic
// concurrency races 409, everything else 500.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrUnknownTargetState),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrIllegalSkip):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
