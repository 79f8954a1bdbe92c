package targets

import (
	"context"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/logistic"
	"logistic/internal/core/domain/model/status"
	"logistic/internal/core/ports"
)

// CreateLogisticInvoiceHandler fetches logistic records ready to be
// invoiced and wraps each one in an envelope whose success callback runs
// the purchase-order transformation.
//
// Eligibility predicate: record status has real status "closed" in the
// logistic context, no purchasing order attached yet, provider set.
type CreateLogisticInvoiceHandler struct {
	invoicer PurchaseInvoicer
}

// NewCreateLogisticInvoiceHandler creates the handler for the
// create_logistic_invoice target.
func NewCreateLogisticInvoiceHandler(invoicer PurchaseInvoicer) *CreateLogisticInvoiceHandler {
	return &CreateLogisticInvoiceHandler{invoicer: invoicer}
}

// Fetch retrieves up to limit eligible records in the active tenant and
// builds their envelopes. A limit of zero or less falls back to
// DefaultFetchLimit. No eligible records is an empty slice, not an error.
func (h *CreateLogisticInvoiceHandler) Fetch(
	ctx context.Context,
	session ports.TenantSession,
	limit int,
) ([]Envelope, error) {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	uow := session.UoWFactory.Create()
	statusRepo := uow.StatusRepository()
	recordRepo := uow.LogisticRecordRepository()
	orderRepo := uow.OrderRepository()
	peopleRepo := uow.PeopleRepository()

	closed, err := statusRepo.GetByRealStatus(ctx, status.RealStatusClosed, status.ContextLogistic)
	if err != nil {
		return nil, err
	}

	statusIDs := make([]kernel.UUID, 0, len(closed))
	for _, s := range closed {
		statusIDs = append(statusIDs, s.ID())
	}

	records, err := recordRepo.GetEligibleForPurchasing(ctx, statusIDs, limit)
	if err != nil {
		return nil, err
	}

	envelopes := make([]Envelope, 0, len(records))
	for _, record := range records {
		source, err := orderRepo.Get(ctx, record.OrderID())
		if err != nil {
			return nil, err
		}

		envelopes = append(envelopes, &logisticInvoiceEnvelope{
			record:   record,
			orderID:  source.ID(),
			carrier:  source.QuoteCarrierName(),
			company:  partyName(ctx, peopleRepo, source.Provider()),
			receiver: partyName(ctx, peopleRepo, source.Client()),
			subject:  "Create logistic order",
			invoicer: h.invoicer,
			session:  session,
		})
	}

	return envelopes, nil
}

// partyName resolves a party's display name, tolerating unset references
// and lookup failures: the name is report metadata, not workflow state.
func partyName(ctx context.Context, repo ports.PeopleRepository, id *kernel.UUID) string {
	if id == nil {
		return ""
	}
	party, err := repo.Get(ctx, *id)
	if err != nil {
		return ""
	}
	return party.Name()
}

// logisticInvoiceEnvelope is the per-record envelope for the
// create_logistic_invoice target. Its notify action is a trivial success
// marker: the "notification" for this target is the transformation itself,
// other targets would call an external channel here.
type logisticInvoiceEnvelope struct {
	record   *logistic.Record
	orderID  kernel.UUID
	carrier  string
	company  string
	receiver string
	subject  string

	invoicer PurchaseInvoicer
	session  ports.TenantSession
}

func (e *logisticInvoiceEnvelope) OrderID() kernel.UUID {
	return e.orderID
}

func (e *logisticInvoiceEnvelope) Carrier() string {
	return e.carrier
}

func (e *logisticInvoiceEnvelope) Company() string {
	return e.company
}

func (e *logisticInvoiceEnvelope) Receiver() string {
	return e.receiver
}

func (e *logisticInvoiceEnvelope) Subject() string {
	return e.subject
}

// Notify marks the candidate as deliverable. The record was validated by
// the eligibility query; an unconstructed record is the only way the
// action itself cannot run.
func (e *logisticInvoiceEnvelope) Notify(_ context.Context) NotifyResult {
	if err := e.record.Validate(); err != nil {
		return NotifyInternalError
	}
	return NotifyDelivered
}

// OnSuccess runs the purchase-order and invoice transformation.
func (e *logisticInvoiceEnvelope) OnSuccess(ctx context.Context) error {
	return e.invoicer.CreatePurchaseInvoice(ctx, e.session, e.record.ID())
}

// OnError is an extension point for retry or alerting logic; nothing is
// wired for this target yet.
func (e *logisticInvoiceEnvelope) OnError(_ context.Context) error {
	return nil
}

var _ Handler = (*CreateLogisticInvoiceHandler)(nil)
