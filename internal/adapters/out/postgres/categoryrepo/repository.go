package categoryrepo

import (
	"context"

	"logistic/internal/core/domain/model/category"
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM.
// Categories are reference data; the repository is read-only.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// GetByName retrieves the first category with the given scope and name that
// is owned by one of the given companies or is global.
func (r *GormCategoryRepository) GetByName(
	ctx context.Context,
	scope, name string,
	companyIDs []kernel.UUID,
) (*category.Category, error) {
	var dtos []CategoryDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "context = ? AND name = ?", scope, name).Error
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		var owners []CategoryCompanyDTO
		err = r.db.WithContext(ctx).Find(&owners, "category_id = ?", dto.ID).Error
		if err != nil {
			return nil, err
		}

		candidate, err := toDomain(dto, owners)
		if err != nil {
			return nil, err
		}
		if candidate.OwnedByAny(companyIDs) {
			return candidate, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("category", name)
}
