// Package ports defines the contracts between the core and infrastructure:
// repositories per aggregate, the unit of work, the tenant registry and the
// external collaborators the batch consumes (payment terms, report sink).
package ports

import (
	"context"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
