package commands

import (
	"errors"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/pkg/guard"
)

var ErrCreateLogisticInvoiceCommandIsNotConstructed = errors.New(
	"CreateLogisticInvoiceCommand must be created via NewCreateLogisticInvoiceCommand constructor",
)

// CreateLogisticInvoiceCommand triggers the transformation of one closed
// logistic record: clone its sale order into a purchase order, attach the
// purchase order to the record and raise the freight invoice.
type CreateLogisticInvoiceCommand struct {
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateLogisticInvoiceCommand creates a command for the given logistic record.
func NewCreateLogisticInvoiceCommand(recordID kernel.UUID) (CreateLogisticInvoiceCommand, error) {
	if err := recordID.Validate(); err != nil {
		return CreateLogisticInvoiceCommand{}, err
	}

	return CreateLogisticInvoiceCommand{
		recordID: recordID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RecordID returns the logistic record to transform.
func (c *CreateLogisticInvoiceCommand) RecordID() kernel.UUID {
	return c.recordID
}

// Validate ensures the command was created through the constructor.
func (c *CreateLogisticInvoiceCommand) Validate() error {
	return c.guard.Validate(
		ErrCreateLogisticInvoiceCommandIsNotConstructed,
	)
}
