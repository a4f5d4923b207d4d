package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// redeliverer re-dispatches parked notifications and reports how many were
// delivered.
type redeliverer interface {
	Redeliver(ctx context.Context) int
}

// NotificationRedeliveryJob periodically drains the failed notification queue
// and retries delivery.
type NotificationRedeliveryJob struct {
	dispatcher redeliverer
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRedeliveryJob creates a job that retries failed
// notifications every 30 seconds.
func NewNotificationRedeliveryJob(dispatcher redeliverer, logger *slog.Logger) *NotificationRedeliveryJob {
	return &NotificationRedeliveryJob{
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_redelivery_job"),
	}
}

// Start begins the redelivery job on its 30-second schedule.
func (j *NotificationRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		if delivered := j.dispatcher.Redeliver(ctx); delivered > 0 {
			j.logger.InfoContext(ctx, "Redelivered parked notifications", "count", delivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification redelivery job started (running every 30 seconds)")
	return nil
}

// Stop stops the redelivery job.
func (j *NotificationRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification redelivery job stopped")
}
