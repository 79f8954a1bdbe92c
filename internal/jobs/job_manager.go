package jobs

import (
	"fmt"
	"log/slog"

	"logistic/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationJob *NotificationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the batch handler as a dependency to wire up the job execution.
func NewJobManager(
	batchHandler commands.RunNotificationBatchCommandHandler,
	targetName string,
	limit int,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationJob: NewNotificationJob(batchHandler, targetName, limit, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationJob.Stop()
}
