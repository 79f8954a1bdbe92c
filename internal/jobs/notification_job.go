package jobs

import (
	"context"
	"log/slog"

	"logistic/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationJob runs the notification batch on a schedule. Each tick
// processes every tenant for the configured target, exactly like an
// operator running the command by hand.
type NotificationJob struct {
	handler    commands.RunNotificationBatchCommandHandler
	targetName string
	limit      int
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationJob creates a scheduled batch run for the given target.
// The schedule is a six-field cron expression with a seconds column.
func NewNotificationJob(
	handler commands.RunNotificationBatchCommandHandler,
	targetName string,
	limit int,
	schedule string,
	logger *slog.Logger,
) *NotificationJob {
	return &NotificationJob{
		handler:    handler,
		targetName: targetName,
		limit:      limit,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_job"),
	}
}

// Start begins running the batch on the configured schedule.
func (j *NotificationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRunNotificationBatchCommand(j.targetName, j.limit)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification job run failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification job started",
		"target", j.targetName, "schedule", j.schedule)
	return nil
}

// Stop stops the notification job.
func (j *NotificationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification job stopped")
}
