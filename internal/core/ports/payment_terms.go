package ports

import (
	"context"
	"time"

	"logistic/internal/core/domain/model/kernel"
)

// PaymentTermsResolver computes the due date for a client's invoice from
// the client's negotiated payment terms. Implemented by an adapter; the
// core only consumes the resulting date.
type PaymentTermsResolver interface {
	// DueDate returns the payment deadline for an invoice issued to the
	// given client today. A nil client resolves to the default terms.
	DueDate(ctx context.Context, session TenantSession, clientID *kernel.UUID) (time.Time, error)
}
