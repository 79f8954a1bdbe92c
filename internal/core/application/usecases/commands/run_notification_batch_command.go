package commands

import (
	"errors"

	"logistic/internal/pkg/errs"
	"logistic/internal/pkg/guard"
)

var ErrRunNotificationBatchCommandIsNotConstructed = errors.New(
	"RunNotificationBatchCommand must be created via NewRunNotificationBatchCommand constructor",
)

// RunNotificationBatchCommand triggers one batch run of a notification
// target across every tenant.
type RunNotificationBatchCommand struct {
	targetName string
	limit      int

	guard guard.ConstructorGuard
}

// NewRunNotificationBatchCommand creates a batch command. The target name
// is resolved by the handler; a limit of zero defers to the handlers'
// internal default.
func NewRunNotificationBatchCommand(targetName string, limit int) (RunNotificationBatchCommand, error) {
	if targetName == "" {
		return RunNotificationBatchCommand{}, errs.NewValueIsRequiredError("target name")
	}
	if limit < 0 {
		return RunNotificationBatchCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, 10000)
	}

	return RunNotificationBatchCommand{
		targetName: targetName,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// TargetName returns the requested notification target name.
func (c *RunNotificationBatchCommand) TargetName() string {
	return c.targetName
}

// Limit returns the maximum number of candidates to process per tenant.
func (c *RunNotificationBatchCommand) Limit() int {
	return c.limit
}

// Validate ensures the command was created through the constructor.
func (c *RunNotificationBatchCommand) Validate() error {
	return c.guard.Validate(
		ErrRunNotificationBatchCommandIsNotConstructed,
	)
}
