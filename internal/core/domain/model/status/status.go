// Package status models the shared status vocabulary. A status is a named
// value scoped to a context (logistic, invoice) and mapped to a coarse
// "real status" such as "closed". Eligibility predicates filter on the
// (real status, context) pair, never on the display name.
package status

import (
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/pkg/errs"
)

// Real statuses are the coarse lifecycle buckets referenced by eligibility
// predicates. Display names vary per tenant, real statuses do not.
const (
	RealStatusOpen   = "open"
	RealStatusClosed = "closed"
)

// WaitingPayment is the invoice-context status assigned to freshly
// generated receivables.
const WaitingPayment = "waiting payment"

var (
	ErrStatusIsNotConstructed = errs.NewValueIsRequiredError("Status must be created via NewStatus")
	ErrStatusNameIsRequired   = errs.NewValueIsRequiredError("status name")
	ErrRealStatusIsRequired   = errs.NewValueIsRequiredError("real status")
)

// Status is a named lifecycle value scoped to a context.
type Status struct {
	id         kernel.UUID
	name       string
	realStatus string
	context    Context

	isConstructed bool
}

// NewStatus creates a validated Status.
func NewStatus(id kernel.UUID, name, realStatus string, context Context) (*Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrStatusNameIsRequired
	}
	if realStatus == "" {
		return nil, ErrRealStatusIsRequired
	}
	if err := context.Validate(); err != nil {
		return nil, err
	}

	return &Status{
		id:            id,
		name:          name,
		realStatus:    realStatus,
		context:       context,
		isConstructed: true,
	}, nil
}

// Validate ensures the Status was created through NewStatus.
func (s *Status) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

// ID returns the status identifier.
func (s *Status) ID() kernel.UUID {
	return s.id
}

// Name returns the tenant-facing display name, e.g. "retrieved".
func (s *Status) Name() string {
	return s.name
}

// RealStatus returns the coarse lifecycle bucket, e.g. "closed".
func (s *Status) RealStatus() string {
	return s.realStatus
}

// Context returns the context the status belongs to.
func (s *Status) Context() Context {
	return s.context
}
