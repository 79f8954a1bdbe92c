package targets

import (
	"context"
	"fmt"
	"log/slog"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/ports"
)

// Outcome is the terminal state of one envelope after dispatch.
type Outcome int

const (
	// OutcomeInternalError means the notify action could not run; no
	// callback fired.
	OutcomeInternalError Outcome = iota

	// OutcomeSucceeded means notify delivered and OnSuccess completed.
	OutcomeSucceeded

	// OutcomeFailed means notify reported a failure and OnError ran.
	OutcomeFailed

	// OutcomeCallbackError means the callback chosen by the notify result
	// returned an error.
	OutcomeCallbackError
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomeInternalError: "internal error",
		OutcomeSucceeded:     "succeeded",
		OutcomeFailed:        "failed",
		OutcomeCallbackError: "callback error",
	}
}

// String returns the outcome's report label.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "unknown"
}

// DispatchResult records what happened to one envelope.
type DispatchResult struct {
	OrderID kernel.UUID
	Outcome Outcome
	Err     error
}

// Dispatcher drives envelopes through notify and the outcome callback,
// narrating each order as a block in the report. Failures are confined to
// the order they belong to; the batch always moves on to the next
// envelope.
type Dispatcher struct {
	report ports.ReportSink
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher writing to the given report sink.
func NewDispatcher(report ports.ReportSink, logger *slog.Logger) Dispatcher {
	return Dispatcher{
		report: report,
		logger: logger.With(slog.String("component", "dispatcher")),
	}
}

// Dispatch processes every envelope in order and returns one result per
// envelope, in the same order.
func (d Dispatcher) Dispatch(ctx context.Context, envelopes []Envelope) []DispatchResult {
	results := make([]DispatchResult, 0, len(envelopes))
	for _, envelope := range envelopes {
		results = append(results, d.dispatchOne(ctx, envelope))
	}
	return results
}

func (d Dispatcher) dispatchOne(ctx context.Context, envelope Envelope) DispatchResult {
	result := DispatchResult{OrderID: envelope.OrderID()}

	d.write(
		fmt.Sprintf("      Order   : %s", envelope.OrderID()),
		fmt.Sprintf("      Carrier : %s", envelope.Carrier()),
		fmt.Sprintf("      Company : %s", envelope.Company()),
		fmt.Sprintf("      Receiver: %s", envelope.Receiver()),
		fmt.Sprintf("      Subject : %s", envelope.Subject()),
	)

	switch envelope.Notify(ctx) {
	case NotifyDelivered:
		result.Outcome = OutcomeSucceeded
		if err := envelope.OnSuccess(ctx); err != nil {
			result.Outcome = OutcomeCallbackError
			result.Err = err
			d.write(fmt.Sprintf("      Error   : %s", err))
			d.logger.ErrorContext(ctx, "success callback failed",
				slog.String("orderId", envelope.OrderID().String()),
				slog.Any("error", err))
		} else {
			d.write("      Status  : delivered")
		}
	case NotifyFailed:
		result.Outcome = OutcomeFailed
		d.write("      Status  : not delivered")
		if err := envelope.OnError(ctx); err != nil {
			result.Outcome = OutcomeCallbackError
			result.Err = err
			d.write(fmt.Sprintf("      Error   : %s", err))
			d.logger.ErrorContext(ctx, "error callback failed",
				slog.String("orderId", envelope.OrderID().String()),
				slog.Any("error", err))
		}
	default:
		result.Outcome = OutcomeInternalError
		d.write("      Error   : send method internal error")
		d.logger.ErrorContext(ctx, "notify action could not run",
			slog.String("orderId", envelope.OrderID().String()))
	}

	d.write("")
	return result
}

func (d Dispatcher) write(lines ...string) {
	if err := d.report.WriteLines(lines...); err != nil {
		d.logger.Error("report write failed", slog.Any("error", err))
	}
}
