// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationRedeliveryJob - Runs every 30 seconds to re-dispatch
// notifications whose delivery previously failed and were parked for
// redelivery.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(retryingDispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Redelivery is best effort: notifications that keep failing stay parked
// until their attempt budget runs out, then they are dropped and logged.
package jobs
