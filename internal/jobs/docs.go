// Package jobs provides scheduled background tasks for the notification
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to run the periodic operations the order notifier needs.
//
// # Available Jobs
//
// 1. NotificationJob - Runs the notification batch for one target on a
// configurable schedule, processing every tenant in turn.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the batch handler
//	jobManager := jobs.NewJobManager(batchHandler, "create_logistic_invoice", 100, "0 0 2 * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a six-field cron expression with a seconds column. The
// default "0 0 2 * * *" runs the batch once a day at 02:00.
//
// # Error Handling
//
// A failed run is logged and the job waits for the next tick; the batch
// itself already confines per-tenant and per-order failures.
package jobs
