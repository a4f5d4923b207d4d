package dispatch

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/notification"
	"orders/internal/core/ports"
)

const (
	// defaultMaxAttempts bounds immediate delivery attempts per Dispatch call.
	defaultMaxAttempts = 3

	// defaultAttemptBudget bounds total attempts per notification across
	// redeliveries. A notification that exhausts the budget is dropped.
	defaultAttemptBudget = 10

	// defaultBackoff is the delay before the first immediate retry; it
	// doubles on each subsequent one.
	defaultBackoff = 250 * time.Millisecond
)

// RetryingDispatcher wraps a notification channel with bounded immediate
// retries. Exhausted notifications are parked in the failed queue and the
// error is logged; Dispatch itself never fails.
type RetryingDispatcher struct {
	inner  ports.NotificationDispatcher
	queue  *FailedQueue
	logger *slog.Logger

	maxAttempts   int
	attemptBudget int
	backoff       time.Duration
}

// NewRetryingDispatcher creates the decorator with default retry bounds.
func NewRetryingDispatcher(
	inner ports.NotificationDispatcher,
	queue *FailedQueue,
	logger *slog.Logger,
) *RetryingDispatcher {
	return &RetryingDispatcher{
		inner:         inner,
		queue:         queue,
		logger:        logger,
		maxAttempts:   defaultMaxAttempts,
		attemptBudget: defaultAttemptBudget,
		backoff:       defaultBackoff,
	}
}

// Dispatch attempts delivery with backoff. On exhaustion the notification is
// parked for redelivery and nil is returned; delivery failure must never
// propagate into the business operation that raised the notification.
func (d *RetryingDispatcher) Dispatch(ctx context.Context, n notification.Notification) error {
	spent, err := d.try(ctx, n, d.maxAttempts)
	if err == nil {
		return nil
	}

	d.park(ctx, n, spent, err)
	return nil
}

// Redeliver drains the failed queue and retries each parked notification
// once. Notifications that fail again within their attempt budget are parked
// back; the rest are dropped. Returns the number delivered.
func (d *RetryingDispatcher) Redeliver(ctx context.Context) int {
	delivered := 0
	for _, item := range d.queue.Drain() {
		if err := ctx.Err(); err != nil {
			d.queue.Push(item)
			continue
		}

		spent, err := d.try(ctx, item.Notification, 1)
		if err == nil {
			delivered++
			continue
		}

		item.Attempts += spent
		if item.Attempts >= d.attemptBudget {
			d.logger.ErrorContext(ctx, "dropping notification, attempt budget exhausted",
				slog.String("orderNumber", item.Notification.OrderNumber()),
				slog.Int("attempts", item.Attempts),
				slog.Any("error", err),
			)
			continue
		}
		d.queue.Push(item)
	}
	return delivered
}

// try runs up to attempts deliveries, sleeping between failures. Returns the
// number of attempts spent and the last error.
func (d *RetryingDispatcher) try(
	ctx context.Context,
	n notification.Notification,
	attempts int,
) (int, error) {
	var lastErr error
	for i := range attempts {
		if i > 0 {
			delay := d.backoff << (i - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return i, ctx.Err()
			}
		}

		lastErr = d.inner.Dispatch(ctx, n)
		if lastErr == nil {
			return i + 1, nil
		}
	}
	return attempts, lastErr
}

func (d *RetryingDispatcher) park(ctx context.Context, n notification.Notification, attempts int, err error) {
	evicted := d.queue.Push(FailedNotification{Notification: n, Attempts: attempts})
	d.logger.ErrorContext(ctx, "notification delivery failed, parked for redelivery",
		slog.String("orderNumber", n.OrderNumber()),
		slog.String("template", n.TemplateKey().String()),
		slog.Int("attempts", attempts),
		slog.Bool("evictedOlder", evicted),
		slog.Any("error", err),
	)
}
