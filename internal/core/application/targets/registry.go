package targets

import (
	"context"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/ports"
)

// PurchaseInvoicer runs the success-path transformation for one eligible
// logistic record: clone the sale into a purchase order, attach it to the
// record and raise the freight invoice. Implemented by the
// CreateLogisticInvoice command handler; the indirection keeps this
// package free of a dependency on the commands package.
type PurchaseInvoicer interface {
	CreatePurchaseInvoice(ctx context.Context, session ports.TenantSession, recordID kernel.UUID) error
}

// Registry is the closed mapping from targets to their handlers. Handlers
// are registered at construction; there is no dynamic lookup, so an
// unrecognized name is rejected at the boundary before any data access.
type Registry struct {
	handlers map[Target]Handler
}

// NewRegistry builds the registry with every known target wired to its
// handler.
func NewRegistry(invoicer PurchaseInvoicer) Registry {
	return Registry{
		handlers: map[Target]Handler{
			TargetCreateLogisticInvoice: NewCreateLogisticInvoiceHandler(invoicer),
		},
	}
}

// Resolve maps a target name to its handler. Unknown names return
// ErrTargetNotDefined, which aborts the whole run.
func (r Registry) Resolve(name string) (Target, Handler, error) {
	target, err := ParseTarget(name)
	if err != nil {
		return TargetUnknown, nil, err
	}

	handler, ok := r.handlers[target]
	if !ok {
		return TargetUnknown, nil, ErrTargetNotDefined
	}
	return target, handler, nil
}
