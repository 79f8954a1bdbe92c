package cmd

import (
	"io"
	"log/slog"

	httpserver "logistic/internal/adapters/in/http"
	"logistic/internal/adapters/out/paymentterms"
	"logistic/internal/adapters/out/postgres"
	"logistic/internal/adapters/out/report"
	"logistic/internal/core/application/targets"
	"logistic/internal/core/application/usecases/commands"
	"logistic/internal/jobs"
)

// CompositionRoot wires adapters and use cases from the configuration.
// Handlers are created per call; the tenant registry is shared so tenant
// connections are opened once per process.
type CompositionRoot struct {
	config  Config
	tenants *postgres.GormTenantRegistry
	logger  *slog.Logger
}

// NewCompositionRoot builds the root. It fails fast on configuration the
// process cannot run without, such as a missing tenant list.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	tenantConfigs, err := config.TenantConfigs()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:  config,
		tenants: postgres.NewGormTenantRegistry(tenantConfigs, nil),
		logger:  logger,
	}, nil
}

// HTTPPort returns the configured listen port, 8080 when unset.
func (c *CompositionRoot) HTTPPort() string {
	if c.config.HTTPPort == "" {
		return "8080"
	}
	return c.config.HTTPPort
}

// TenantRegistry exposes the shared tenant registry.
func (c *CompositionRoot) TenantRegistry() *postgres.GormTenantRegistry {
	return c.tenants
}

// CreateRunNotificationBatchCommandHandler builds the batch pipeline with
// the report going to the given writer.
func (c *CompositionRoot) CreateRunNotificationBatchCommandHandler(
	out io.Writer,
) (commands.RunNotificationBatchCommandHandler, error) {
	strategy, err := c.config.ParsedCommitStrategy()
	if err != nil {
		return commands.RunNotificationBatchCommandHandler{}, err
	}

	paymentDays, err := c.config.ParsedPaymentDays()
	if err != nil {
		return commands.RunNotificationBatchCommandHandler{}, err
	}

	invoicer := commands.NewCreateLogisticInvoiceCommandHandler(
		paymentterms.NewNetDaysResolver(paymentDays),
		strategy,
	)
	sink := report.NewWriterSink(out)

	return commands.NewRunNotificationBatchCommandHandler(
		targets.NewRegistry(&invoicer),
		c.tenants,
		targets.NewDispatcher(sink, c.logger),
		sink,
		c.logger,
	), nil
}

// CreateHTTPServer builds the REST surface over the batch pipeline.
func (c *CompositionRoot) CreateHTTPServer(out io.Writer) (*httpserver.Server, error) {
	batchHandler, err := c.CreateRunNotificationBatchCommandHandler(out)
	if err != nil {
		return nil, err
	}
	return httpserver.NewServer(batchHandler, c.tenants), nil
}

// CreateJobManager builds the scheduled batch runs.
func (c *CompositionRoot) CreateJobManager(out io.Writer) (*jobs.JobManager, error) {
	batchHandler, err := c.CreateRunNotificationBatchCommandHandler(out)
	if err != nil {
		return nil, err
	}

	limit, err := c.config.ParsedBatchLimit()
	if err != nil {
		return nil, err
	}

	target := c.config.CronTarget
	if target == "" {
		target = targets.TargetCreateLogisticInvoice.String()
	}

	schedule := c.config.CronSchedule
	if schedule == "" {
		schedule = "0 0 2 * * *"
	}

	return jobs.NewJobManager(batchHandler, target, limit, schedule, c.logger), nil
}
