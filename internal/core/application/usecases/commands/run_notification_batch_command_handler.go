package commands

import (
	"context"
	"fmt"
	"log/slog"

	"logistic/internal/core/application/targets"
	"logistic/internal/core/ports"
)

const reportBanner = "========================================="

// RunNotificationBatchCommandHandler drives one batch run: resolve the
// target, then for every tenant activate, fetch candidates and dispatch
// them. Only an unknown target or an unreachable tenant registry is fatal;
// per-tenant and per-order failures are reported and the run continues.
type RunNotificationBatchCommandHandler struct {
	registry   targets.Registry
	tenants    ports.TenantRegistry
	dispatcher targets.Dispatcher
	report     ports.ReportSink
	logger     *slog.Logger
}

// NewRunNotificationBatchCommandHandler creates a handler for batch runs.
func NewRunNotificationBatchCommandHandler(
	registry targets.Registry,
	tenants ports.TenantRegistry,
	dispatcher targets.Dispatcher,
	report ports.ReportSink,
	logger *slog.Logger,
) RunNotificationBatchCommandHandler {
	return RunNotificationBatchCommandHandler{
		registry:   registry,
		tenants:    tenants,
		dispatcher: dispatcher,
		report:     report,
		logger:     logger.With(slog.String("component", "notification-batch")),
	}
}

// Handle processes one batch run. The target is resolved before anything
// is written to the report, so a misconfigured target aborts with no output.
func (h *RunNotificationBatchCommandHandler) Handle(ctx context.Context, cmd RunNotificationBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target, handler, err := h.registry.Resolve(cmd.TargetName())
	if err != nil {
		return err
	}

	tenants, err := h.tenants.Tenants(ctx)
	if err != nil {
		return err
	}

	limit := cmd.Limit()
	if limit <= 0 {
		limit = targets.DefaultFetchLimit
	}

	for _, tenant := range tenants {
		h.runTenant(ctx, tenant, target, handler, limit)
	}
	return nil
}

// runTenant processes one tenant, framing its block with the header and
// footer banners. The header names the row limit, not the fetched count;
// it is written before the fetch happens. Failures stay inside the tenant:
// the next tenant always runs.
func (h *RunNotificationBatchCommandHandler) runTenant(
	ctx context.Context,
	tenant ports.Tenant,
	target targets.Target,
	handler targets.Handler,
	limit int,
) {
	logger := h.logger.With(slog.String("tenant", tenant.Name))

	session, err := h.tenants.Activate(ctx, tenant)
	if err != nil {
		logger.WarnContext(ctx, "tenant activation failed, skipping", slog.Any("error", err))
		return
	}

	h.write(
		"",
		reportBanner,
		fmt.Sprintf("Notification target: %s", target),
		reportBanner,
		fmt.Sprintf("Domain: %s", tenant.Name),
		fmt.Sprintf("Rows to process: %d", limit),
		"",
	)
	defer h.write(
		"",
		reportBanner,
		"End of Order Notifier",
		reportBanner,
		"",
	)

	envelopes, err := handler.Fetch(ctx, session, limit)
	if err != nil {
		logger.ErrorContext(ctx, "candidate fetch failed, skipping tenant", slog.Any("error", err))
		return
	}

	if len(envelopes) == 0 {
		h.write("      There is no pending orders.")
		return
	}

	results := h.dispatcher.Dispatch(ctx, envelopes)
	for _, result := range results {
		if result.Err != nil {
			logger.ErrorContext(ctx, "order processing failed",
				slog.String("orderId", result.OrderID.String()),
				slog.String("outcome", result.Outcome.String()),
				slog.Any("error", result.Err))
		}
	}
}

func (h *RunNotificationBatchCommandHandler) write(lines ...string) {
	if err := h.report.WriteLines(lines...); err != nil {
		h.logger.Error("report write failed", slog.Any("error", err))
	}
}
