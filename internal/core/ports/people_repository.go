package ports

import (
	"context"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/people"
)

// PeopleRepository defines lookups over the parties referenced by orders.
type PeopleRepository interface {
	// Get retrieves a party by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*people.People, error)
}
