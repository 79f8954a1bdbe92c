package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"logistic/internal/adapters/out/postgres"
	"logistic/internal/core/application/usecases/commands"
)

// Config carries the raw environment configuration. Parsing into typed
// values happens in the accessors so a bad value surfaces where it is used.
type Config struct {
	HTTPPort           string
	TenantDSNs         string
	CronSchedule       string
	CronTarget         string
	BatchLimit         string
	DefaultPaymentDays string
	CommitStrategy     string
}

// TenantConfigs parses the TENANT_DSNS variable, a comma-separated list of
// name=dsn pairs, one per tenant store.
func (c Config) TenantConfigs() ([]postgres.TenantConfig, error) {
	if strings.TrimSpace(c.TenantDSNs) == "" {
		return nil, fmt.Errorf("no tenant DSNs configured")
	}

	var configs []postgres.TenantConfig
	for _, pair := range strings.Split(c.TenantDSNs, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, dsn, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(dsn) == "" {
			return nil, fmt.Errorf("malformed tenant DSN entry %q, want name=dsn", pair)
		}

		configs = append(configs, postgres.TenantConfig{
			Name: strings.TrimSpace(name),
			DSN:  strings.TrimSpace(dsn),
		})
	}

	if len(configs) == 0 {
		return nil, fmt.Errorf("no tenant DSNs configured")
	}
	return configs, nil
}

// ParsedCommitStrategy returns the configured transformation commit
// strategy, defaulting to atomic when unset.
func (c Config) ParsedCommitStrategy() (commands.CommitStrategy, error) {
	if strings.TrimSpace(c.CommitStrategy) == "" {
		return commands.CommitAtomic, nil
	}
	return commands.ParseCommitStrategy(c.CommitStrategy)
}

// ParsedPaymentDays returns the fallback net-days payment term, zero when
// unset so the resolver applies its own default.
func (c Config) ParsedPaymentDays() (int, error) {
	if strings.TrimSpace(c.DefaultPaymentDays) == "" {
		return 0, nil
	}

	days, err := strconv.Atoi(c.DefaultPaymentDays)
	if err != nil {
		return 0, fmt.Errorf("invalid DEFAULT_PAYMENT_DAYS %q: %w", c.DefaultPaymentDays, err)
	}
	return days, nil
}

// ParsedBatchLimit returns the per-tenant row limit for scheduled runs,
// zero when unset so the batch applies its own default.
func (c Config) ParsedBatchLimit() (int, error) {
	if strings.TrimSpace(c.BatchLimit) == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(c.BatchLimit)
	if err != nil {
		return 0, fmt.Errorf("invalid BATCH_LIMIT %q: %w", c.BatchLimit, err)
	}
	return limit, nil
}
