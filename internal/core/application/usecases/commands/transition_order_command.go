package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to move an order into a new
// lifecycle state. The requested state is validated for membership here;
// whether the transition is legal from the order's current state is decided
// by the state machine inside the handler.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	targetState order.State

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// Validates that the order ID is valid and the target is a member of the
// closed state set.
func NewTransitionOrderCommand(orderID kernel.UUID, targetState order.State) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetState(targetState),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetState returns the requested lifecycle state.
func (c TransitionOrderCommand) TargetState() order.State {
	return c.targetState
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTargetState(targetState order.State) error {
	if err := targetState.Validate(); err != nil {
		return err
	}

	c.targetState = targetState
	return nil
}
