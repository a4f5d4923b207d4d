package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/notification"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// maxTransitionAttempts bounds the fetch-validate-conditional-write loop.
// After exhaustion the caller receives a ConcurrencyConflictError and may
// retry the whole request.
const maxTransitionAttempts = 3

// dispatchTimeout bounds how long an asynchronous notification dispatch may
// run after its transition has committed.
const dispatchTimeout = 10 * time.Second

// TransitionOrderCommandHandler applies validated state transitions to
// orders. This is the one operation in the core that needs explicit
// concurrency coordination: the read-validate-write sequence is guarded by
// the repository's conditional update (optimistic concurrency), so unrelated
// orders never contend and at most one of two racing transitions commits
// against the same prior state.
//
// On a successful commit into a notifying state, exactly one notification is
// handed to the dispatcher asynchronously. The dispatch outcome never rolls
// back or alters the committed order state.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher ports.NotificationDispatcher,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "transition_order_handler"),
	}
}

// Handle processes the transition command.
//
// Each attempt fetches the current order, validates the transition against
// the state machine, and commits via compare-and-swap on the state field.
// A lost race is retried from the fetch step against the new current state,
// which is itself subject to validation again. Validation denials and
// missing orders fail immediately without mutation. When all attempts lose
// their race, the handler fails with a ConcurrencyConflictError.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxTransitionAttempts; attempt++ {
		updated, note, err := h.attempt(ctx, cmd)
		if err == nil {
			if note != nil {
				go h.dispatch(*note)
			}
			return updated, nil
		}

		if !errors.Is(err, errs.ErrConcurrentModification) {
			return nil, err
		}
		lastErr = err
	}

	return nil, errs.NewConcurrencyConflictErrorWithCause(
		"orderId", cmd.OrderID().String(), maxTransitionAttempts, lastErr)
}

// attempt performs one fetch-validate-conditional-write cycle. It returns the
// updated aggregate and, when the target state notifies the customer, the
// notification to dispatch after the commit.
func (h TransitionOrderCommandHandler) attempt(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (*order.Order, *notification.Notification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	previous := aggregate.State()
	if err = aggregate.TransitionTo(cmd.TargetState(), time.Now()); err != nil {
		return nil, nil, err
	}

	note, err := h.buildNotification(ctx, uow, aggregate)
	if err != nil {
		return nil, nil, err
	}

	if err = orderRepo.UpdateStateFrom(ctx, aggregate, previous); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return aggregate, note, nil
}

// buildNotification resolves the customer contact for a notifying target
// state. A missing customer suppresses the notification but never the
// transition: the order mutation stays the source of truth.
func (h TransitionOrderCommandHandler) buildNotification(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
) (*notification.Notification, error) {
	templateKey, notifies := aggregate.State().NotificationTemplate()
	if !notifies {
		return nil, nil
	}

	cust, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "customer missing, transition notification suppressed",
			"order_id", aggregate.ID().String(),
			"customer_id", aggregate.CustomerID().String(),
			"template", templateKey.String())
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	note, err := notification.NewNotification(cust.Email(), templateKey, aggregate.Number())
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// dispatch hands one notification to the dispatcher on its own context.
// The transition has already committed; a dispatch failure is logged and
// left to the dispatcher's retry domain.
func (h TransitionOrderCommandHandler) dispatch(note notification.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if err := h.dispatcher.Dispatch(ctx, note); err != nil {
		h.logger.ErrorContext(ctx, "transition notification dispatch failed",
			"order_number", note.OrderNumber(),
			"template", note.TemplateKey().String(),
			"error", err)
	}
}
