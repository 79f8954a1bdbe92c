package ports

import (
	"context"

	"logistic/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the persistence contract for receivable invoices.
type InvoiceRepository interface {
	// Add persists a new invoice without its order lines.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// AddLines persists the invoice's order links. Kept separate from Add so
	// the transformation can reproduce the source system's commit granularity.
	AddLines(ctx context.Context, aggregate *invoice.Invoice) error
}
