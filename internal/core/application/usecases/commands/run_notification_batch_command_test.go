package commands_test

import (
	"testing"

	"logistic/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunNotificationBatchCommand(t *testing.T) {
	cmd, err := commands.NewRunNotificationBatchCommand("create_logistic_invoice", 100)
	require.NoError(t, err)
	assert.Equal(t, "create_logistic_invoice", cmd.TargetName())
	assert.Equal(t, 100, cmd.Limit())
	assert.NoError(t, cmd.Validate())
}

func TestNewRunNotificationBatchCommand_EmptyTarget(t *testing.T) {
	_, err := commands.NewRunNotificationBatchCommand("", 100)
	require.Error(t, err)
}

func TestNewRunNotificationBatchCommand_NegativeLimit(t *testing.T) {
	_, err := commands.NewRunNotificationBatchCommand("create_logistic_invoice", -1)
	require.Error(t, err)
}

func TestRunNotificationBatchCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.RunNotificationBatchCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrRunNotificationBatchCommandIsNotConstructed)
}
