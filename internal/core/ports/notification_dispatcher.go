package ports

import (
	"context"

	"orders/internal/core/domain/model/notification"
)

// NotificationDispatcher defines the best-effort delivery contract for
// transition notifications.
//
// The contract isolates failure: a returned error means delivery did not
// happen (yet), but callers on the order-mutation path must never treat it
// as a reason to roll back or alter a committed state change. Implementations
// own their retry policy; retries are bounded and independent of the order's
// own state.
type NotificationDispatcher interface {
	// Dispatch attempts delivery of one notification. At most one dispatch
	// is triggered per qualifying transition; implementations must not be
	// handed the same committed transition twice.
	Dispatch(ctx context.Context, n notification.Notification) error
}
