// Package services contains stateless domain services coordinating rules
// that span more than one aggregate.
package services

import (
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/logistic"
	"logistic/internal/core/domain/model/order"
	"logistic/internal/pkg/errs"
)

// ErrLogisticRecordMismatch is returned when the logistic record does not
// ship the order it is being cloned from.
var ErrLogisticRecordMismatch = errs.NewValueIsInvalidError(
	"logistic record does not belong to the source order")

// ErrLogisticProviderIsRequired is returned when the logistic record has no
// provider; without one there is nobody to raise the purchase order against.
var ErrLogisticProviderIsRequired = errs.NewValueIsRequiredError("logistic record provider")

// PurchaseOrderFactory builds the purchase order that mirrors a closed
// shipment. The cloning rules are fixed:
//
//   - the new order is a purchase and references the sale as its main order
//   - the sale's provider becomes both client and payer of the purchase
//     (our company buys the freight it previously sold)
//   - the logistic record's provider becomes the purchase provider
//   - the purchase price is the logistic amount paid, not the sale price
//   - the parking date is inherited from the sale
type PurchaseOrderFactory struct{}

// NewPurchaseOrderFactory creates a new PurchaseOrderFactory instance.
func NewPurchaseOrderFactory() PurchaseOrderFactory {
	return PurchaseOrderFactory{}
}

// CloneForShipment derives the purchase order for a closed logistic record.
// The source order must carry a provider and the record must belong to the
// source order and carry a provider of its own.
func (f PurchaseOrderFactory) CloneForShipment(
	source *order.Order,
	record *logistic.Record,
) (*order.Order, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if !record.OrderID().IsEqual(source.ID()) {
		return nil, ErrLogisticRecordMismatch
	}

	sourceProvider, err := source.RequireProvider()
	if err != nil {
		return nil, err
	}
	logisticProvider := record.Provider()
	if logisticProvider == nil {
		return nil, ErrLogisticProviderIsRequired
	}

	sourceID := source.ID()
	return order.RestoreOrder(
		kernel.NewUUID(),
		order.Purchase,
		&sourceProvider,
		logisticProvider,
		&sourceProvider,
		&sourceID,
		record.AmountPaid(),
		source.ParkingDate(),
		source.QuoteCarrierName(),
	)
}
