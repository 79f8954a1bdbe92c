// Package logistic contains the LogisticRecord aggregate: the shipping
// record attached to a sale order, tracking carrier, provider, amounts paid
// and the purchase order the record spawned once it was invoiced.
package logistic

import (
	"time"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a LogisticRecord was not
	// created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errs.NewValueIsRequiredError(
		"LogisticRecord must be created via NewRecord or RestoreRecord")

	// ErrPurchaseOrderAlreadyAttached guards the record's idempotency:
	// once a purchasing order is linked the record must never spawn another.
	ErrPurchaseOrderAlreadyAttached = errs.NewValueIsInvalidError(
		"logistic record already has a purchasing order attached")
)

// Waypoint describes one end of the shipment: a city plus a free-form
// address. Both fields are optional display data.
type Waypoint struct {
	City    string
	Address string
}

// Schedule carries the planned and actual shipping/arrival dates.
// All fields are optional; the workflow never mutates them.
type Schedule struct {
	EstimatedShipping *time.Time
	Shipping          *time.Time
	EstimatedArrival  *time.Time
	Arrival           *time.Time
}

// Record associates an order with its shipping metadata and tracks whether
// the closed shipment has already been converted into a purchase order.
//
// Record invariants:
//   - Must reference a valid order
//   - PurchasingOrder can be attached exactly once (idempotency guard);
//     a record with a purchasing order attached is excluded from every
//     future eligibility scan
type Record struct {
	id      kernel.UUID
	orderID kernel.UUID

	// providerID is the party paid for the shipment; eligibility for
	// invoicing requires it to be set
	providerID *kernel.UUID

	// carrierID is the party physically moving the goods
	carrierID *kernel.UUID

	// amountPaid is what the provider charged; it becomes the price of
	// the generated purchase order
	amountPaid kernel.Money

	origin      Waypoint
	destination Waypoint
	schedule    Schedule

	statusID kernel.UUID

	// purchasingOrderID is set once, when the record is invoiced
	purchasingOrderID *kernel.UUID

	isConstructed bool
}

// NewRecord creates a validated logistic record with no purchasing order attached.
func NewRecord(
	id, orderID kernel.UUID,
	providerID, carrierID *kernel.UUID,
	amountPaid kernel.Money,
	origin, destination Waypoint,
	schedule Schedule,
	statusID kernel.UUID,
) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := validateOptionalID(providerID); err != nil {
		return nil, err
	}
	if err := validateOptionalID(carrierID); err != nil {
		return nil, err
	}
	if err := statusID.Validate(); err != nil {
		return nil, err
	}

	return &Record{
		id:            id,
		orderID:       orderID,
		providerID:    copyID(providerID),
		carrierID:     copyID(carrierID),
		amountPaid:    amountPaid,
		origin:        origin,
		destination:   destination,
		schedule:      schedule,
		statusID:      statusID,
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a record from persistence, including an
// already-attached purchasing order.
func RestoreRecord(
	id, orderID kernel.UUID,
	providerID, carrierID *kernel.UUID,
	amountPaid kernel.Money,
	origin, destination Waypoint,
	schedule Schedule,
	statusID kernel.UUID,
	purchasingOrderID *kernel.UUID,
) (*Record, error) {
	restored, err := NewRecord(id, orderID, providerID, carrierID, amountPaid, origin, destination, schedule, statusID)
	if err != nil {
		return nil, err
	}
	if err = validateOptionalID(purchasingOrderID); err != nil {
		return nil, err
	}

	restored.purchasingOrderID = copyID(purchasingOrderID)
	return restored, nil
}

// Validate ensures the Record was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the sale order this record ships.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// Provider returns the party paid for the shipment, nil when unset.
func (r *Record) Provider() *kernel.UUID {
	return copyID(r.providerID)
}

// Carrier returns the party moving the goods, nil when unset.
func (r *Record) Carrier() *kernel.UUID {
	return copyID(r.carrierID)
}

// AmountPaid returns what the provider charged for the shipment.
func (r *Record) AmountPaid() kernel.Money {
	return r.amountPaid
}

// Origin returns the shipment origin waypoint.
func (r *Record) Origin() Waypoint {
	return r.origin
}

// Destination returns the shipment destination waypoint.
func (r *Record) Destination() Waypoint {
	return r.destination
}

// Schedule returns the planned and actual shipment dates.
func (r *Record) Schedule() Schedule {
	return r.schedule
}

// StatusID returns the record's logistic-context status.
func (r *Record) StatusID() kernel.UUID {
	return r.statusID
}

// PurchasingOrder returns the purchase order spawned by this record,
// nil while the record has not been invoiced.
func (r *Record) PurchasingOrder() *kernel.UUID {
	return copyID(r.purchasingOrderID)
}

// HasPurchasingOrder reports whether the record has already been converted.
func (r *Record) HasPurchasingOrder() bool {
	return r.purchasingOrderID != nil
}

// AttachPurchaseOrder links the generated purchase order to the record.
// This is the idempotency write: it succeeds exactly once per record and
// returns ErrPurchaseOrderAlreadyAttached on any repeat attempt.
func (r *Record) AttachPurchaseOrder(purchaseOrderID kernel.UUID) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}
	if r.purchasingOrderID != nil {
		return ErrPurchaseOrderAlreadyAttached
	}

	r.purchasingOrderID = &purchaseOrderID
	return nil
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
