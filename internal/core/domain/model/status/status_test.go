package status_test

import (
	"testing"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus_Valid(t *testing.T) {
	s, err := status.NewStatus(kernel.NewUUID(), "retrieved", status.RealStatusClosed, status.ContextLogistic)

	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.Equal(t, "retrieved", s.Name())
	assert.Equal(t, status.RealStatusClosed, s.RealStatus())
	assert.Equal(t, status.ContextLogistic, s.Context())
}

func TestNewStatus_RequiresName(t *testing.T) {
	_, err := status.NewStatus(kernel.NewUUID(), "", status.RealStatusOpen, status.ContextInvoice)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrStatusNameIsRequired)
}

func TestNewStatus_RequiresRealStatus(t *testing.T) {
	_, err := status.NewStatus(kernel.NewUUID(), "retrieved", "", status.ContextLogistic)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrRealStatusIsRequired)
}

func TestNewStatus_RequiresValidContext(t *testing.T) {
	_, err := status.NewStatus(kernel.NewUUID(), "retrieved", status.RealStatusClosed, status.ContextUnknown)
	require.Error(t, err)
}

func TestStatus_NotConstructed(t *testing.T) {
	var s *status.Status
	assert.ErrorIs(t, s.Validate(), status.ErrStatusIsNotConstructed)
	assert.ErrorIs(t, (&status.Status{}).Validate(), status.ErrStatusIsNotConstructed)
}

func TestParseContext(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected status.Context
		wantErr  bool
	}{
		{name: "logistic", input: "logistic", expected: status.ContextLogistic},
		{name: "invoice", input: "invoice", expected: status.ContextInvoice},
		{name: "unknown name", input: "billing", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown is rejected", input: "unknown", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			context, err := status.ParseContext(test.input)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, context)
		})
	}
}

func TestContext_String(t *testing.T) {
	assert.Equal(t, "logistic", status.ContextLogistic.String())
	assert.Equal(t, "invoice", status.ContextInvoice.String())
	assert.Equal(t, "unknown", status.ContextUnknown.String())
	assert.Equal(t, "unknown", status.Context(99).String())
}
