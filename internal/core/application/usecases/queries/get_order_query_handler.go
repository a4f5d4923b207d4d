package queries

import (
	"context"
	"database/sql"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order joined with its customer.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an error wrapping errs.ErrObjectNotFound
// when no order with the given identifier exists. A dangling customer
// reference yields empty customer fields rather than an error.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.details,
			o.state,
			o.created_at,
			o.updated_at,
			c.name,
			c.email
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, rows.Err()
}

func scanOrderRow(rows *sql.Rows) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var state int
	var name, email sql.NullString

	err := rows.Scan(
		&id,
		&customerID,
		&resp.Details,
		&state,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&name,
		&email,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetOrderQueryResponse{}, idErr
	}
	custID, idErr := kernel.UUIDFromBytes(customerID[:])
	if idErr != nil {
		return GetOrderQueryResponse{}, idErr
	}

	resp.ID = orderID
	resp.Number = order.FormatOrderNumber(orderID)
	resp.State = order.State(state)
	resp.CustomerID = custID
	resp.CustomerName = name.String
	resp.CustomerEmail = email.String

	return resp, nil
}
