package commands

import (
	"context"
)

// RemoveOrderCommandHandler handles order removal.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order removal operations.
func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. Fails with an error wrapping
// errs.ErrObjectNotFound when the order does not exist; removal triggers no
// notification and consults no state machine.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
