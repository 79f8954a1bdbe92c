// Package peoplerepo provides read access to the parties referenced by orders.
package peoplerepo

import (
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/people"

	"github.com/google/uuid"
)

// PeopleDTO represents the database structure for party rows.
type PeopleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	PaymentDays int
}

// TableName overrides GORM's default naming convention to use "people".
func (PeopleDTO) TableName() string {
	return "people"
}

func toDomain(dto PeopleDTO) (*people.People, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return people.NewPeople(id, dto.Name, dto.PaymentDays)
}
