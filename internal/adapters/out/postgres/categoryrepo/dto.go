// Package categoryrepo provides read access to classification categories
// and their owning companies.
package categoryrepo

import (
	"logistic/internal/core/domain/model/category"
	"logistic/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for category rows.
type CategoryDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"index"`
	Context string    `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

// CategoryCompanyDTO links a category to one owning company. A category
// with no rows here is global.
type CategoryCompanyDTO struct {
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides GORM's default naming convention to use "category_companies".
func (CategoryCompanyDTO) TableName() string {
	return "category_companies"
}

func toDomain(dto CategoryDTO, owners []CategoryCompanyDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyIDs := make([]kernel.UUID, 0, len(owners))
	for _, owner := range owners {
		companyID, err := kernel.UUIDFromBytes(owner.CompanyID[:])
		if err != nil {
			return nil, err
		}
		companyIDs = append(companyIDs, companyID)
	}

	return category.NewCategory(id, dto.Name, dto.Context, companyIDs)
}
