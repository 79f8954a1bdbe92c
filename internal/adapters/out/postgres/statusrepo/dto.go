// Package statusrepo provides read access to the shared status vocabulary.
package statusrepo

import (
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// StatusDTO represents the database structure for status rows.
type StatusDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"index"`
	RealStatus string    `gorm:"index"`
	Context    string    `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "statuses".
func (StatusDTO) TableName() string {
	return "statuses"
}

func toDomain(dto StatusDTO) (*status.Status, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	scope, err := status.ParseContext(dto.Context)
	if err != nil {
		return nil, err
	}

	return status.NewStatus(id, dto.Name, dto.RealStatus, scope)
}
