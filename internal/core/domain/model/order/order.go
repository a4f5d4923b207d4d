package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through the state machine to
// a terminal state.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Details must be non-empty
//   - State is always a member of the closed state set
//   - UpdatedAt strictly increases on every accepted transition
//   - Can only be created through NewOrder or RestoreOrder
//
// The order number is never stored; it is derived deterministically from the
// identifier on every read (see Number).
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is a non-owning reference to the customer the order belongs to
	customerID kernel.UUID

	// details is the opaque descriptive payload supplied at creation
	details string

	// state represents the current position in the order lifecycle
	state State

	// createdAt is the creation timestamp, immutable after construction
	createdAt time.Time

	// updatedAt is bumped on every accepted transition, strictly increasing
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Created state. This is the only way to
// create a brand-new order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: reference to the owning customer (must be a valid UUID)
//   - details: descriptive payload (must be non-empty)
//   - now: creation timestamp; stored as both createdAt and updatedAt
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(id, customerID kernel.UUID, details string, now time.Time) (*Order, error) {
	o := &Order{
		state:         Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	ts := now.UTC()
	o.createdAt = ts
	o.updatedAt = ts

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts an arbitrary (valid) state and the stored timestamps. Used by
// repository implementations only.
func RestoreOrder(
	id, customerID kernel.UUID,
	details string,
	state State,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDetails(details),
		o.setState(state),
	); err != nil {
		return nil, err
	}

	o.createdAt = createdAt.UTC()
	o.updatedAt = updatedAt.UTC()

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the non-owning reference to the order's customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Details returns the order's descriptive payload.
func (o *Order) Details() string {
	return o.details
}

// State returns the current lifecycle state of the order.
func (o *Order) State() State {
	return o.state
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last accepted transition, or the
// creation timestamp if no transition has been accepted yet.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Number returns the derived human-readable order number.
// Same identifier always yields the same number; never persisted.
func (o *Order) Number() string {
	return FormatOrderNumber(o.id)
}

// TransitionTo attempts to move the order into the target state.
//
// The transition is validated against the state machine; on denial the order
// is left untouched and the denial error is returned. On success the state is
// replaced and updatedAt is bumped to now, nudged forward by a nanosecond if
// the clock has not advanced past the previous value, so updatedAt strictly
// increases on every accepted transition.
func (o *Order) TransitionTo(target State, now time.Time) error {
	newState, err := o.state.TransitionTo(target)
	if err != nil {
		return err
	}

	ts := now.UTC()
	if !ts.After(o.updatedAt) {
		ts = o.updatedAt.Add(time.Nanosecond)
	}

	o.state = newState
	o.updatedAt = ts
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDetails(details string) error {
	if details == "" {
		return errs.NewValueIsRequiredError("details")
	}
	o.details = details
	return nil
}

func (o *Order) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.state = state
	return nil
}
