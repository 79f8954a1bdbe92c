// Package paymentterms computes invoice due dates from the payment terms
// negotiated with each client.
package paymentterms

import (
	"context"
	"time"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/ports"
)

// DefaultNetDays is used when the client has no negotiated payment term.
const DefaultNetDays = 30

// NetDaysResolver implements PaymentTermsResolver with a net-days policy:
// the invoice is due the configured number of days after issuing. The
// client's own payment term wins over the configured default.
type NetDaysResolver struct {
	defaultDays int
	now         func() time.Time
}

// NewNetDaysResolver creates a resolver with the given fallback term.
// A non-positive defaultDays falls back to DefaultNetDays.
func NewNetDaysResolver(defaultDays int) *NetDaysResolver {
	if defaultDays <= 0 {
		defaultDays = DefaultNetDays
	}
	return &NetDaysResolver{
		defaultDays: defaultDays,
		now:         time.Now,
	}
}

// DueDate returns the payment deadline for an invoice issued to the given
// client today. A missing client or an unknown client falls back to the
// default term rather than failing the transformation.
func (r *NetDaysResolver) DueDate(
	ctx context.Context,
	session ports.TenantSession,
	clientID *kernel.UUID,
) (time.Time, error) {
	days := r.defaultDays

	if clientID != nil {
		client, err := session.UoWFactory.Create().PeopleRepository().Get(ctx, *clientID)
		if err == nil && client.PaymentDays() > 0 {
			days = client.PaymentDays()
		}
	}

	issued := r.now().UTC().Truncate(24 * time.Hour)
	return issued.AddDate(0, 0, days), nil
}
