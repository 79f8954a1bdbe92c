// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Sale and purchase orders share the table; purchases reference their sale
// through MainOrderID.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type             int        `gorm:"index"`
	ClientID         *uuid.UUID `gorm:"type:uuid;index"`
	ProviderID       *uuid.UUID `gorm:"type:uuid;index"`
	PayerID          *uuid.UUID `gorm:"type:uuid"`
	MainOrderID      *uuid.UUID `gorm:"type:uuid;index"`
	PriceCents       int64
	ParkingDate      *time.Time
	QuoteCarrierName string
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Type:             int(aggregate.Type()),
		ClientID:         rawID(aggregate.Client()),
		ProviderID:       rawID(aggregate.Provider()),
		PayerID:          rawID(aggregate.Payer()),
		MainOrderID:      rawID(aggregate.MainOrder()),
		PriceCents:       aggregate.Price().Cents(),
		ParkingDate:      aggregate.ParkingDate(),
		QuoteCarrierName: aggregate.QuoteCarrierName(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := domainID(dto.ClientID)
	if err != nil {
		return nil, err
	}
	providerID, err := domainID(dto.ProviderID)
	if err != nil {
		return nil, err
	}
	payerID, err := domainID(dto.PayerID)
	if err != nil {
		return nil, err
	}
	mainOrderID, err := domainID(dto.MainOrderID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, order.Type(dto.Type),
		clientID, providerID, payerID, mainOrderID,
		price, dto.ParkingDate, dto.QuoteCarrierName,
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
