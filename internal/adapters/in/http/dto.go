package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// Error is the JSON error payload returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string `json:"customerId"`
	Details    string `json:"details"`
}

// TransitionRequest is the payload for PATCH /api/v1/orders/:id/state.
type TransitionRequest struct {
	State string `json:"state"`
}

// RemoveOrderResponse is the JSON payload returned by a successful delete.
type RemoveOrderResponse struct {
	Message string `json:"message"`
}

// OrderResponse is the JSON representation of an order. Customer fields are
// present when the view was read together with its customer.
type OrderResponse struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	State         string    `json:"state"`
	Details       string    `json:"details"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:         aggregate.ID().String(),
		Number:     aggregate.Number(),
		State:      aggregate.State().String(),
		Details:    aggregate.Details(),
		CustomerID: aggregate.CustomerID().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func orderResponseFromReadModel(view queries.GetOrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:            view.ID.String(),
		Number:        view.Number,
		State:         view.State.String(),
		Details:       view.Details,
		CustomerID:    view.CustomerID.String(),
		CustomerName:  view.CustomerName,
		CustomerEmail: view.CustomerEmail,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}
