package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The order record is the only mutable shared resource in this core, so the
// contract exposes a conditional update rather than a blind write: transition
// safety under concurrent requests rests on UpdateStateFrom.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStateFrom persists the aggregate's state and updatedAt only if
	// the stored state still equals previous (compare-and-swap on the state
	// field). Returns an error wrapping errs.ErrConcurrentModification when
	// the stored state no longer matches, and an error wrapping
	// errs.ErrObjectNotFound when the order no longer exists.
	UpdateStateFrom(ctx context.Context, aggregate *order.Order, previous order.State) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if the order is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. Removal is independent of the state machine:
	// no lifecycle state represents deletion. Returns an error wrapping
	// errs.ErrObjectNotFound if the order is absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
