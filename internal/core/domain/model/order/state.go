package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/notification"
	"orders/internal/pkg/errs"
)

// Transition denial reasons. CanTransitionTo wraps exactly one of these into
// every denial so callers can distinguish why a transition was refused.
var (
	// ErrUnknownTargetState is returned when the requested state is not a
	// member of the closed state set.
	ErrUnknownTargetState = errors.New("unknown target state")

	// ErrTerminalState is returned when the current state is Delivered or
	// Rejected, from which no transition is permitted.
	ErrTerminalState = errors.New("order is in a terminal state")

	// ErrIllegalSkip is returned when the requested state is neither the
	// immediate successor of the current state nor Rejected.
	ErrIllegalSkip = errors.New("requested state is not the immediate successor")
)

// State represents the lifecycle state of an order.
// It implements a state machine with a single linear forward progression plus
// a cancellation edge, ensuring orders follow the correct business workflow.
//
// State transitions:
//
//	Created -> Processing -> Accepted -> Conduct -> Finalizing
//	        -> Finished -> Shipped -> Delivered (terminal)
//
//	any non-terminal state -> Rejected (terminal)
//
// Skipping stages, moving backward, and transitioning out of Delivered or
// Rejected are denied. State is a value object: validation is pure, in-memory,
// and fully deterministic.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Created is the initial state assigned when an order is first created.
	Created

	// Processing indicates the order has entered processing.
	Processing

	// Accepted indicates the order has been accepted. Entering this state
	// notifies the customer.
	Accepted

	// Conduct indicates the order is being conducted.
	Conduct

	// Finalizing indicates the order is being finalized.
	Finalizing

	// Finished indicates the order work is finished. Entering this state
	// notifies the customer.
	Finished

	// Shipped indicates the order has been shipped.
	Shipped

	// Delivered indicates the order reached the customer. This is a terminal
	// state; entering it notifies the customer.
	Delivered

	// Rejected indicates the order was cancelled. Reachable from every
	// non-terminal state. This is a terminal state; entering it notifies
	// the customer.
	Rejected
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:    "unknown",
		Created:    "created",
		Processing: "processing",
		Accepted:   "accepted",
		Conduct:    "conduct",
		Finalizing: "finalizing",
		Finished:   "finished",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Rejected:   "rejected",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Created:    "created",
		Processing: "processing",
		Accepted:   "accepted",
		Conduct:    "conduct",
		Finalizing: "finalizing",
		Finished:   "finished",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Rejected:   "rejected",
	}
}

// successors maps each state to its single allowed forward successor.
// Terminal states have no successor. Rejected is reachable from every
// non-terminal state and is handled separately in CanTransitionTo.
func successors() map[State]State {
	return map[State]State{
		Created:    Processing,
		Processing: Accepted,
		Accepted:   Conduct,
		Conduct:    Finalizing,
		Finalizing: Finished,
		Finished:   Shipped,
		Shipped:    Delivered,
	}
}

// StateFromString parses the wire name of a state ("created", "processing",
// ...). Returns ErrUnknownTargetState wrapped with the offending input for
// anything outside the closed state set.
func StateFromString(s string) (State, error) {
	for state, name := range getValidStateStrings() {
		if name == s {
			return state, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownTargetState, s)
}

// String returns the wire name of the state, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the State value is a member of the closed state set.
// Unknown (0) and any out-of-range value are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%d is not a valid state", int(s)))
	}
	return nil
}

// IsTerminal reports whether no further transition is permitted out of s.
func (s State) IsTerminal() bool {
	return s == Delivered || s == Rejected
}

// CanTransitionTo checks whether the transition from s to target is legal
// without performing it. Returns nil if the transition is allowed, otherwise
// a denial wrapping exactly one of ErrUnknownTargetState, ErrTerminalState,
// or ErrIllegalSkip.
//
// This is a pure function over the total transition table: no I/O, no shared
// state.
func (s State) CanTransitionTo(target State) error {
	if err := target.Validate(); err != nil {
		return fmt.Errorf("%w: %d", ErrUnknownTargetState, int(target))
	}

	if s.IsTerminal() {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrTerminalState, s, target)
	}

	if target == Rejected {
		return nil
	}

	if next, ok := successors()[s]; ok && target == next {
		return nil
	}

	return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalSkip, s, target)
}

// TransitionTo returns the new state after a legal transition from s to
// target, or the denial error if the transition is not allowed.
func (s State) TransitionTo(target State) (State, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}

	return target, nil
}

// NotificationTemplate returns the notification template key to dispatch when
// an order enters s, and whether entering s notifies the customer at all.
// Exactly the subset {Accepted, Finished, Delivered, Rejected} qualifies.
func (s State) NotificationTemplate() (notification.TemplateKey, bool) {
	switch s {
	case Accepted:
		return notification.TemplateAccepted, true
	case Finished:
		return notification.TemplateFinished, true
	case Delivered:
		return notification.TemplateDelivered, true
	case Rejected:
		return notification.TemplateRejected, true
	default:
		return notification.TemplateUnknown, false
	}
}
