// Package invoice contains the receivable Invoice aggregate and the join
// rows linking an invoice to the orders it bills.
package invoice

import (
	"time"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice was not created
	// through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errs.NewValueIsRequiredError(
		"Invoice must be created via NewInvoice or RestoreInvoice")

	// ErrOrderAlreadyLinked is returned when a second line for the same
	// order is added; every invoice carries exactly one line per order.
	ErrOrderAlreadyLinked = errs.NewValueIsInvalidError(
		"order is already linked to the invoice")

	// ErrDueDateIsRequired is returned when the due date is the zero time.
	ErrDueDateIsRequired = errs.NewValueIsRequiredError("invoice due date")

	// ErrDescriptionIsRequired is returned when the free-text description is empty.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("invoice description")
)

// OrderLine links the invoice to one billed order, carrying the price
// realized for that order. The realized price may differ from the invoice
// price: a freight invoice bills the sale price while its line records
// what the purchase order actually cost.
type OrderLine struct {
	OrderID       kernel.UUID
	RealizedPrice kernel.Money
}

// Invoice is a receivable: an amount a client owes, with a due date, an
// invoice-context status, an expense category and the orders it bills.
type Invoice struct {
	id          kernel.UUID
	price       kernel.Money
	dueDate     time.Time
	statusID    kernel.UUID
	notified    bool
	description string
	categoryID  kernel.UUID
	lines       []OrderLine

	isConstructed bool
}

// NewInvoice creates a validated invoice with no order lines and the
// notified flag cleared.
func NewInvoice(
	id kernel.UUID,
	price kernel.Money,
	dueDate time.Time,
	statusID kernel.UUID,
	description string,
	categoryID kernel.UUID,
) (*Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if dueDate.IsZero() {
		return nil, ErrDueDateIsRequired
	}
	if err := statusID.Validate(); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, ErrDescriptionIsRequired
	}
	if err := categoryID.Validate(); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		price:         price,
		dueDate:       dueDate,
		statusID:      statusID,
		description:   description,
		categoryID:    categoryID,
		isConstructed: true,
	}, nil
}

// RestoreInvoice reconstructs an invoice from persistence, including its
// notified flag and order lines.
func RestoreInvoice(
	id kernel.UUID,
	price kernel.Money,
	dueDate time.Time,
	statusID kernel.UUID,
	notified bool,
	description string,
	categoryID kernel.UUID,
	lines []OrderLine,
) (*Invoice, error) {
	restored, err := NewInvoice(id, price, dueDate, statusID, description, categoryID)
	if err != nil {
		return nil, err
	}

	restored.notified = notified
	restored.lines = append(restored.lines, lines...)
	return restored, nil
}

// Validate ensures the Invoice was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// Price returns the billed amount.
func (i *Invoice) Price() kernel.Money {
	return i.price
}

// DueDate returns the payment deadline.
func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

// StatusID returns the invoice-context status.
func (i *Invoice) StatusID() kernel.UUID {
	return i.statusID
}

// Notified reports whether the payer was already notified about the invoice.
func (i *Invoice) Notified() bool {
	return i.notified
}

// Description returns the free-text description, e.g. "Frete".
func (i *Invoice) Description() string {
	return i.description
}

// CategoryID returns the expense category the invoice is filed under.
func (i *Invoice) CategoryID() kernel.UUID {
	return i.categoryID
}

// Lines returns the order links in insertion order.
func (i *Invoice) Lines() []OrderLine {
	out := make([]OrderLine, len(i.lines))
	copy(out, i.lines)
	return out
}

// AddOrder links a billed order to the invoice with the price realized for
// that order. Linking the same order twice returns ErrOrderAlreadyLinked.
func (i *Invoice) AddOrder(orderID kernel.UUID, realizedPrice kernel.Money) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	for _, line := range i.lines {
		if line.OrderID.IsEqual(orderID) {
			return ErrOrderAlreadyLinked
		}
	}

	i.lines = append(i.lines, OrderLine{OrderID: orderID, RealizedPrice: realizedPrice})
	return nil
}
