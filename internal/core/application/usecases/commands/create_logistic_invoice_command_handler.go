package commands

import (
	"context"

	"logistic/internal/core/domain/model/category"
	"logistic/internal/core/domain/model/invoice"
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/logistic"
	"logistic/internal/core/domain/model/order"
	"logistic/internal/core/domain/model/status"
	"logistic/internal/core/domain/services"
	"logistic/internal/core/ports"
)

// freightDescription labels the generated invoice and selects its expense
// category. The value is the source system's fixed freight label.
const freightDescription = "Frete"

// CreateLogisticInvoiceCommandHandler runs the transformation for one
// logistic record in four persistence steps:
//
//  1. Clone the sale order into a purchase order and persist it.
//  2. Attach the purchase order to the record (the idempotency write).
//  3. Build and persist the freight invoice.
//  4. Persist the invoice's order line.
//
// The commit strategy decides whether the steps share one transaction or
// commit one by one. Step failures are returned as TransformationError so
// the caller can report them without aborting the batch.
type CreateLogisticInvoiceCommandHandler struct {
	factory  services.PurchaseOrderFactory
	terms    ports.PaymentTermsResolver
	strategy CommitStrategy
}

// NewCreateLogisticInvoiceCommandHandler creates a handler for the
// transformation. Any strategy other than CommitPerStep falls back to
// CommitAtomic.
func NewCreateLogisticInvoiceCommandHandler(
	terms ports.PaymentTermsResolver,
	strategy CommitStrategy,
) CreateLogisticInvoiceCommandHandler {
	return CreateLogisticInvoiceCommandHandler{
		factory:  services.NewPurchaseOrderFactory(),
		terms:    terms,
		strategy: strategy,
	}
}

// transformation carries the state shared between the steps of one run.
type transformation struct {
	recordID kernel.UUID

	record   *logistic.Record
	source   *order.Order
	purchase *order.Order
	invoice  *invoice.Invoice
}

// Handle processes the transformation command for one logistic record.
func (h *CreateLogisticInvoiceCommandHandler) Handle(
	ctx context.Context,
	session ports.TenantSession,
	cmd CreateLogisticInvoiceCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	t := &transformation{recordID: cmd.RecordID()}
	if h.strategy == CommitPerStep {
		return h.handlePerStep(ctx, session, t)
	}
	return h.handleAtomic(ctx, session, t)
}

// CreatePurchaseInvoice runs the transformation for the given record. It is
// the callback the notification envelopes invoke on delivery.
func (h *CreateLogisticInvoiceCommandHandler) CreatePurchaseInvoice(
	ctx context.Context,
	session ports.TenantSession,
	recordID kernel.UUID,
) error {
	cmd, err := NewCreateLogisticInvoiceCommand(recordID)
	if err != nil {
		return err
	}
	return h.Handle(ctx, session, cmd)
}

func (h *CreateLogisticInvoiceCommandHandler) handleAtomic(
	ctx context.Context,
	session ports.TenantSession,
	t *transformation,
) error {
	return h.inTransaction(ctx, session, func(uow ports.UnitOfWork) error {
		if err := h.clonePurchaseOrder(ctx, uow, t); err != nil {
			return err
		}
		if err := h.attachPurchaseOrder(ctx, uow, t); err != nil {
			return err
		}
		if err := h.createInvoice(ctx, session, uow, t); err != nil {
			return err
		}
		return h.linkInvoice(ctx, uow, t)
	})
}

func (h *CreateLogisticInvoiceCommandHandler) handlePerStep(
	ctx context.Context,
	session ports.TenantSession,
	t *transformation,
) error {
	steps := []func(uow ports.UnitOfWork) error{
		func(uow ports.UnitOfWork) error { return h.clonePurchaseOrder(ctx, uow, t) },
		func(uow ports.UnitOfWork) error { return h.attachPurchaseOrder(ctx, uow, t) },
		func(uow ports.UnitOfWork) error { return h.createInvoice(ctx, session, uow, t) },
		func(uow ports.UnitOfWork) error { return h.linkInvoice(ctx, uow, t) },
	}

	for _, step := range steps {
		if err := h.inTransaction(ctx, session, step); err != nil {
			return err
		}
	}
	return nil
}

func (h *CreateLogisticInvoiceCommandHandler) inTransaction(
	ctx context.Context,
	session ports.TenantSession,
	fn func(uow ports.UnitOfWork) error,
) error {
	uow := session.UoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// clonePurchaseOrder loads the record with its source order and persists
// the purchase clone.
func (h *CreateLogisticInvoiceCommandHandler) clonePurchaseOrder(
	ctx context.Context,
	uow ports.UnitOfWork,
	t *transformation,
) error {
	record, err := uow.LogisticRecordRepository().Get(ctx, t.recordID)
	if err != nil {
		return NewTransformationError(StepCloneOrder, t.recordID, err)
	}
	source, err := uow.OrderRepository().Get(ctx, record.OrderID())
	if err != nil {
		return NewTransformationError(StepCloneOrder, t.recordID, err)
	}

	purchase, err := h.factory.CloneForShipment(source, record)
	if err != nil {
		return NewTransformationError(StepCloneOrder, t.recordID, err)
	}
	if err = uow.OrderRepository().Add(ctx, purchase); err != nil {
		return NewTransformationError(StepCloneOrder, t.recordID, err)
	}

	t.record = record
	t.source = source
	t.purchase = purchase
	return nil
}

// attachPurchaseOrder writes the purchasing-order link. This is the write
// that removes the record from future eligibility scans; the aggregate
// rejects a second attachment.
func (h *CreateLogisticInvoiceCommandHandler) attachPurchaseOrder(
	ctx context.Context,
	uow ports.UnitOfWork,
	t *transformation,
) error {
	if err := t.record.AttachPurchaseOrder(t.purchase.ID()); err != nil {
		return NewTransformationError(StepAttachPurchaseOrder, t.recordID, err)
	}
	if err := uow.LogisticRecordRepository().Update(ctx, t.record); err != nil {
		return NewTransformationError(StepAttachPurchaseOrder, t.recordID, err)
	}
	return nil
}

// createInvoice builds the freight invoice: the sale price is billed, the
// purchase price is recorded on the line added by linkInvoice.
func (h *CreateLogisticInvoiceCommandHandler) createInvoice(
	ctx context.Context,
	session ports.TenantSession,
	uow ports.UnitOfWork,
	t *transformation,
) error {
	waiting, err := uow.StatusRepository().GetByName(ctx, status.WaitingPayment, status.ContextInvoice)
	if err != nil {
		return NewTransformationError(StepCreateInvoice, t.recordID, err)
	}

	expense, err := uow.CategoryRepository().GetByName(
		ctx, category.ContextExpense, freightDescription, t.invoiceOwners())
	if err != nil {
		return NewTransformationError(StepCreateInvoice, t.recordID, err)
	}

	due, err := h.terms.DueDate(ctx, session, t.source.Client())
	if err != nil {
		return NewTransformationError(StepCreateInvoice, t.recordID, err)
	}

	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), t.source.Price(), due, waiting.ID(), freightDescription, expense.ID())
	if err != nil {
		return NewTransformationError(StepCreateInvoice, t.recordID, err)
	}
	if err = inv.AddOrder(t.purchase.ID(), t.purchase.Price()); err != nil {
		return NewTransformationError(StepCreateInvoice, t.recordID, err)
	}
	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return NewTransformationError(StepCreateInvoice, t.recordID, err)
	}

	t.invoice = inv
	return nil
}

// linkInvoice persists the invoice's order line as its own step so the
// per-step strategy commits it separately.
func (h *CreateLogisticInvoiceCommandHandler) linkInvoice(
	ctx context.Context,
	uow ports.UnitOfWork,
	t *transformation,
) error {
	if err := uow.InvoiceRepository().AddLines(ctx, t.invoice); err != nil {
		return NewTransformationError(StepLinkInvoice, t.recordID, err)
	}
	return nil
}

// invoiceOwners lists the companies that may own the expense category: the
// sale's provider (our company) and, as a fallback, its client.
func (t *transformation) invoiceOwners() []kernel.UUID {
	var owners []kernel.UUID
	if id := t.source.Provider(); id != nil {
		owners = append(owners, *id)
	}
	if id := t.source.Client(); id != nil {
		owners = append(owners, *id)
	}
	return owners
}
