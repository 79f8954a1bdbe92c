// Package logisticrepo provides data transfer objects and mapping functions
// for logistic record persistence.
package logisticrepo

import (
	"time"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/logistic"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting logistic
// records. PurchasingOrderID doubles as the eligibility marker: a non-null
// value excludes the row from every scan.
type RecordDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID  `gorm:"type:uuid;index"`
	ProviderID            *uuid.UUID `gorm:"type:uuid"`
	CarrierID             *uuid.UUID `gorm:"type:uuid"`
	AmountPaidCents       int64
	OriginCity            string
	OriginAddress         string
	DestinationCity       string
	DestinationAddress    string
	EstimatedShippingDate *time.Time
	ShippingDate          *time.Time
	EstimatedArrivalDate  *time.Time
	ArrivalDate           *time.Time
	StatusID              uuid.UUID  `gorm:"type:uuid;index"`
	PurchasingOrderID     *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming convention to use "logistic_records".
func (RecordDTO) TableName() string {
	return "logistic_records"
}

func fromDomain(aggregate *logistic.Record) RecordDTO {
	schedule := aggregate.Schedule()
	return RecordDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderID:               aggregate.OrderID().Bytes(),
		ProviderID:            rawID(aggregate.Provider()),
		CarrierID:             rawID(aggregate.Carrier()),
		AmountPaidCents:       aggregate.AmountPaid().Cents(),
		OriginCity:            aggregate.Origin().City,
		OriginAddress:         aggregate.Origin().Address,
		DestinationCity:       aggregate.Destination().City,
		DestinationAddress:    aggregate.Destination().Address,
		EstimatedShippingDate: schedule.EstimatedShipping,
		ShippingDate:          schedule.Shipping,
		EstimatedArrivalDate:  schedule.EstimatedArrival,
		ArrivalDate:           schedule.Arrival,
		StatusID:              aggregate.StatusID().Bytes(),
		PurchasingOrderID:     rawID(aggregate.PurchasingOrder()),
	}
}

func toDomain(dto RecordDTO) (*logistic.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	statusID, err := kernel.UUIDFromBytes(dto.StatusID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := domainID(dto.ProviderID)
	if err != nil {
		return nil, err
	}
	carrierID, err := domainID(dto.CarrierID)
	if err != nil {
		return nil, err
	}
	purchasingOrderID, err := domainID(dto.PurchasingOrderID)
	if err != nil {
		return nil, err
	}

	amountPaid, err := kernel.NewMoneyFromCents(dto.AmountPaidCents)
	if err != nil {
		return nil, err
	}

	return logistic.RestoreRecord(
		id, orderID,
		providerID, carrierID,
		amountPaid,
		logistic.Waypoint{City: dto.OriginCity, Address: dto.OriginAddress},
		logistic.Waypoint{City: dto.DestinationCity, Address: dto.DestinationAddress},
		logistic.Schedule{
			EstimatedShipping: dto.EstimatedShippingDate,
			Shipping:          dto.ShippingDate,
			EstimatedArrival:  dto.EstimatedArrivalDate,
			Arrival:           dto.ArrivalDate,
		},
		statusID,
		purchasingOrderID,
	)
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
