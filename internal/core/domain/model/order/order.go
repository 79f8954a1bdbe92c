package order

import (
	"time"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("Order must be created via NewOrder or RestoreOrder")

	// ErrProviderIsRequired is returned when an operation needs the order's
	// provider and none is set.
	ErrProviderIsRequired = errs.NewValueIsRequiredError("order provider")
)

// Order represents a commercial transaction. Orders carry a type tag
// (sale or purchase), the parties involved and a price. Purchase orders
// generated from a sale reference the sale through MainOrderID, forming
// a chain that can be followed back to the originating deal.
//
// Order invariants:
//   - Must have a valid unique identifier
//   - Must have a valid order type
//   - Client, provider and payer are optional on reads but a purchase clone
//     always carries all three
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	// orderType tags the order as a sale or a purchase
	orderType Type

	// clientID is the party buying; nil for incomplete upstream data
	clientID *kernel.UUID

	// providerID is the party selling or carrying out the service
	providerID *kernel.UUID

	// payerID is the party billed for the order
	payerID *kernel.UUID

	// mainOrderID links a purchase order back to the sale it fulfills
	mainOrderID *kernel.UUID

	// price is the negotiated order total
	price kernel.Money

	// parkingDate is the date the goods were parked for shipment
	parkingDate *time.Time

	// quoteCarrierName is display metadata from the accepted quote, empty
	// when the order has no quote attached
	quoteCarrierName string

	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts without a
// main order reference; use SetMainOrder (via RestoreOrder) or the purchase
// factory in the services package to build chained orders.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	clientID, providerID, payerID *kernel.UUID,
	price kernel.Money,
	parkingDate *time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := validateOptionalID("client", clientID); err != nil {
		return nil, err
	}
	if err := validateOptionalID("provider", providerID); err != nil {
		return nil, err
	}
	if err := validateOptionalID("payer", payerID); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		orderType:     orderType,
		clientID:      copyID(clientID),
		providerID:    copyID(providerID),
		payerID:       copyID(payerID),
		price:         price,
		parkingDate:   copyDate(parkingDate),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence, including the main
// order link and quote metadata that NewOrder does not accept.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	clientID, providerID, payerID, mainOrderID *kernel.UUID,
	price kernel.Money,
	parkingDate *time.Time,
	quoteCarrierName string,
) (*Order, error) {
	restored, err := NewOrder(id, orderType, clientID, providerID, payerID, price, parkingDate)
	if err != nil {
		return nil, err
	}
	if err = validateOptionalID("main order", mainOrderID); err != nil {
		return nil, err
	}

	restored.mainOrderID = copyID(mainOrderID)
	restored.quoteCarrierName = quoteCarrierName
	return restored, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the sale/purchase type tag.
func (o *Order) Type() Type {
	return o.orderType
}

// Client returns the buying party's ID, nil when unset.
func (o *Order) Client() *kernel.UUID {
	return copyID(o.clientID)
}

// Provider returns the selling party's ID, nil when unset.
func (o *Order) Provider() *kernel.UUID {
	return copyID(o.providerID)
}

// Payer returns the billed party's ID, nil when unset.
func (o *Order) Payer() *kernel.UUID {
	return copyID(o.payerID)
}

// MainOrder returns the sale order this purchase fulfills, nil for
// top-of-chain orders.
func (o *Order) MainOrder() *kernel.UUID {
	return copyID(o.mainOrderID)
}

// Price returns the order total.
func (o *Order) Price() kernel.Money {
	return o.price
}

// ParkingDate returns the date the goods were parked for shipment.
func (o *Order) ParkingDate() *time.Time {
	return copyDate(o.parkingDate)
}

// QuoteCarrierName returns the carrier name from the accepted quote,
// or the empty string when no quote is attached.
func (o *Order) QuoteCarrierName() string {
	return o.quoteCarrierName
}

// RequireProvider returns the provider ID or ErrProviderIsRequired when unset.
// Transformations that bill the provider call this before cloning.
func (o *Order) RequireProvider() (kernel.UUID, error) {
	if o.providerID == nil {
		return kernel.UUID{}, ErrProviderIsRequired
	}
	return *o.providerID, nil
}

func validateOptionalID(name string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
