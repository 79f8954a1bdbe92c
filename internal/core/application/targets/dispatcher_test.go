package targets_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"logistic/internal/core/application/targets"
	"logistic/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	lines []string
}

func (s *recordingSink) WriteLines(lines ...string) error {
	s.lines = append(s.lines, lines...)
	return nil
}

type stubEnvelope struct {
	orderID      kernel.UUID
	notifyResult targets.NotifyResult
	successErr   error
	errorErr     error

	successCalls int
	errorCalls   int
}

func (e *stubEnvelope) OrderID() kernel.UUID { return e.orderID }
func (e *stubEnvelope) Carrier() string      { return "Speedy Freight" }
func (e *stubEnvelope) Company() string      { return "Acme Provider" }
func (e *stubEnvelope) Receiver() string     { return "Globex Client" }
func (e *stubEnvelope) Subject() string      { return "Create logistic order" }

func (e *stubEnvelope) Notify(_ context.Context) targets.NotifyResult {
	return e.notifyResult
}

func (e *stubEnvelope) OnSuccess(_ context.Context) error {
	e.successCalls++
	return e.successErr
}

func (e *stubEnvelope) OnError(_ context.Context) error {
	e.errorCalls++
	return e.errorErr
}

func newTestDispatcher(sink *recordingSink) targets.Dispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return targets.NewDispatcher(sink, logger)
}

func TestDispatcher_Delivered_RunsOnSuccessOnly(t *testing.T) {
	sink := &recordingSink{}
	envelope := &stubEnvelope{orderID: kernel.NewUUID(), notifyResult: targets.NotifyDelivered}

	results := newTestDispatcher(sink).Dispatch(t.Context(), []targets.Envelope{envelope})

	require.Len(t, results, 1)
	assert.Equal(t, targets.OutcomeSucceeded, results[0].Outcome)
	assert.Equal(t, envelope.orderID, results[0].OrderID)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, envelope.successCalls)
	assert.Equal(t, 0, envelope.errorCalls)
	assert.Contains(t, sink.lines, "      Status  : delivered")
}

func TestDispatcher_Failed_RunsOnErrorOnly(t *testing.T) {
	sink := &recordingSink{}
	envelope := &stubEnvelope{orderID: kernel.NewUUID(), notifyResult: targets.NotifyFailed}

	results := newTestDispatcher(sink).Dispatch(t.Context(), []targets.Envelope{envelope})

	require.Len(t, results, 1)
	assert.Equal(t, targets.OutcomeFailed, results[0].Outcome)
	assert.Equal(t, 0, envelope.successCalls)
	assert.Equal(t, 1, envelope.errorCalls)
	assert.Contains(t, sink.lines, "      Status  : not delivered")
}

func TestDispatcher_InternalError_SkipsCallbacks(t *testing.T) {
	sink := &recordingSink{}
	envelope := &stubEnvelope{orderID: kernel.NewUUID(), notifyResult: targets.NotifyInternalError}

	results := newTestDispatcher(sink).Dispatch(t.Context(), []targets.Envelope{envelope})

	require.Len(t, results, 1)
	assert.Equal(t, targets.OutcomeInternalError, results[0].Outcome)
	assert.Equal(t, 0, envelope.successCalls)
	assert.Equal(t, 0, envelope.errorCalls)
	assert.Contains(t, sink.lines, "      Error   : send method internal error")
}

func TestDispatcher_CallbackError_IsConfinedToItsOrder(t *testing.T) {
	sink := &recordingSink{}
	failing := &stubEnvelope{
		orderID:      kernel.NewUUID(),
		notifyResult: targets.NotifyDelivered,
		successErr:   errors.New("clone failed"),
	}
	healthy := &stubEnvelope{orderID: kernel.NewUUID(), notifyResult: targets.NotifyDelivered}

	results := newTestDispatcher(sink).Dispatch(t.Context(), []targets.Envelope{failing, healthy})

	require.Len(t, results, 2)
	assert.Equal(t, targets.OutcomeCallbackError, results[0].Outcome)
	assert.EqualError(t, results[0].Err, "clone failed")
	assert.Equal(t, targets.OutcomeSucceeded, results[1].Outcome)
	assert.Equal(t, 1, healthy.successCalls)
	assert.Contains(t, sink.lines, "      Error   : clone failed")
}

func TestDispatcher_ReportBlockPerOrder(t *testing.T) {
	sink := &recordingSink{}
	envelope := &stubEnvelope{orderID: kernel.NewUUID(), notifyResult: targets.NotifyDelivered}

	newTestDispatcher(sink).Dispatch(t.Context(), []targets.Envelope{envelope})

	require.NotEmpty(t, sink.lines)
	assert.Equal(t, "      Order   : "+envelope.orderID.String(), sink.lines[0])
	assert.Contains(t, sink.lines, "      Carrier : Speedy Freight")
	assert.Contains(t, sink.lines, "      Company : Acme Provider")
	assert.Contains(t, sink.lines, "      Receiver: Globex Client")
	assert.Contains(t, sink.lines, "      Subject : Create logistic order")
	assert.Equal(t, "", sink.lines[len(sink.lines)-1], "each block ends with a separator line")
}

func TestDispatcher_EmptyBatch(t *testing.T) {
	sink := &recordingSink{}

	results := newTestDispatcher(sink).Dispatch(t.Context(), nil)

	assert.Empty(t, results)
	assert.Empty(t, sink.lines)
}
