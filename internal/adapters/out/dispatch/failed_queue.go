// Package dispatch decorates a notification channel with bounded retries and
// a parking queue for notifications the channel could not deliver. The
// decorator never surfaces delivery errors to its caller; a cron job drains
// the queue and re-dispatches later.
package dispatch

import (
	"sync"

	"orders/internal/core/domain/model/notification"
)

// FailedNotification is a parked notification together with the number of
// delivery attempts already spent on it.
type FailedNotification struct {
	Notification notification.Notification
	Attempts     int
}

// FailedQueue is a bounded FIFO of notifications awaiting redelivery. When
// full, the oldest entry is evicted so recent notifications are preferred.
type FailedQueue struct {
	mu       sync.Mutex
	items    []FailedNotification
	capacity int
	evicted  int
}

// NewFailedQueue creates a queue holding at most capacity entries.
func NewFailedQueue(capacity int) *FailedQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &FailedQueue{capacity: capacity}
}

// Push parks a failed notification. Reports whether an older entry was
// evicted to make room.
func (q *FailedQueue) Push(item FailedNotification) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	evicted := false
	if len(q.items) >= q.capacity {
		q.items = q.items[1:]
		q.evicted++
		evicted = true
	}

	q.items = append(q.items, item)
	return evicted
}

// Drain removes and returns all parked notifications in arrival order.
func (q *FailedQueue) Drain() []FailedNotification {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

// Len returns the number of parked notifications.
func (q *FailedQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Evicted returns how many entries were dropped because the queue was full.
func (q *FailedQueue) Evicted() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.evicted
}
