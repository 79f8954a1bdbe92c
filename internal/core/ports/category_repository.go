package ports

import (
	"context"

	"logistic/internal/core/domain/model/category"
	"logistic/internal/core/domain/model/kernel"
)

// CategoryRepository defines lookups over classification categories.
type CategoryRepository interface {
	// GetByName retrieves the category with the given scope and name owned
	// by any of the given companies. Global categories match regardless of owner.
	GetByName(ctx context.Context, scope, name string, companyIDs []kernel.UUID) (*category.Category, error)
}
