package ports

import (
	"context"

	"logistic/internal/core/domain/model/status"
)

// StatusRepository defines lookups over the shared status vocabulary.
type StatusRepository interface {
	// GetByRealStatus retrieves every status mapped to the given real status
	// within a scope, e.g. all logistic statuses meaning "closed".
	GetByRealStatus(ctx context.Context, realStatus string, scope status.Context) ([]*status.Status, error)

	// GetByName retrieves a single status by display name within a scope.
	GetByName(ctx context.Context, name string, scope status.Context) (*status.Status, error)
}
