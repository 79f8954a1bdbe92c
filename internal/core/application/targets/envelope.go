package targets

import (
	"context"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/ports"
)

// NotifyResult is the tri-state outcome of an envelope's notify action.
// It reifies the boolean-or-null contract of the notification channel:
// delivered, failed, or the action could not run at all.
type NotifyResult int

const (
	// NotifyInternalError means the notify action itself could not run.
	// No callback fires; the candidate is abandoned for this run and will
	// be retried on the next scheduled run since no state changed.
	NotifyInternalError NotifyResult = iota

	// NotifyDelivered means the action succeeded; OnSuccess fires.
	NotifyDelivered

	// NotifyFailed means the action ran and reported a business failure;
	// OnError fires.
	NotifyFailed
)

// Envelope is the per-order bundle a handler produces for each candidate:
// display metadata for the report plus the notify action and its two
// outcome callbacks. An envelope is built once per candidate and driven
// exactly once by the dispatcher.
type Envelope interface {
	// OrderID identifies the sale order the envelope was built for.
	OrderID() kernel.UUID

	// Carrier returns the carrier name from the order's quote, or the
	// empty string when no quote is attached.
	Carrier() string

	// Company returns the providing company's name.
	Company() string

	// Receiver returns the client's name, or the empty string when the
	// order has no client.
	Receiver() string

	// Subject returns the report subject line.
	Subject() string

	// Notify executes the side-effecting notification action.
	Notify(ctx context.Context) NotifyResult

	// OnSuccess runs the success-path transformation. Errors are surfaced
	// to the dispatcher's report and never abort the batch.
	OnSuccess(ctx context.Context) error

	// OnError runs the failure-path reaction. A no-op for targets without
	// retry or alerting logic.
	OnError(ctx context.Context) error
}

// Handler produces the candidate envelopes for one target within the
// active tenant. Implementations apply the target's eligibility predicate
// and cap results at limit (falling back to DefaultFetchLimit when the
// caller passes zero or a negative value). An empty slice is not an error.
type Handler interface {
	Fetch(ctx context.Context, session ports.TenantSession, limit int) ([]Envelope, error)
}
