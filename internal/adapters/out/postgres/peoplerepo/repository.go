package peoplerepo

import (
	"context"
	"errors"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/people"
	"logistic/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPeopleRepository implements PeopleRepository using GORM. Parties are
// reference data for this workflow; the repository is read-only.
type GormPeopleRepository struct {
	db *gorm.DB
}

// NewGormPeopleRepository creates a new GORM people repository.
func NewGormPeopleRepository(db *gorm.DB) *GormPeopleRepository {
	return &GormPeopleRepository{db: db}
}

// Get retrieves a party by ID.
func (r *GormPeopleRepository) Get(ctx context.Context, id kernel.UUID) (*people.People, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PeopleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("people", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
