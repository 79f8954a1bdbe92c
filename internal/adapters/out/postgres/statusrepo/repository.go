package statusrepo

import (
	"context"
	"errors"

	"logistic/internal/core/domain/model/status"
	"logistic/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository implements StatusRepository using GORM. Statuses are
// reference data; the repository is read-only.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GORM status repository.
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// GetByRealStatus retrieves every status mapped to the given real status
// within a scope.
func (r *GormStatusRepository) GetByRealStatus(
	ctx context.Context,
	realStatus string,
	scope status.Context,
) ([]*status.Status, error) {
	var dtos []StatusDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "real_status = ? AND context = ?", realStatus, scope.String()).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]*status.Status, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}

	return statuses, nil
}

// GetByName retrieves a single status by display name within a scope.
func (r *GormStatusRepository) GetByName(
	ctx context.Context,
	name string,
	scope status.Context,
) (*status.Status, error) {
	var dto StatusDTO
	err := r.db.WithContext(ctx).
		First(&dto, "name = ? AND context = ?", name, scope.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
