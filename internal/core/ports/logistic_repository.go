package ports

import (
	"context"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/logistic"
)

// LogisticRecordRepository defines the persistence contract for logistic records.
type LogisticRecordRepository interface {
	// Get retrieves a logistic record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*logistic.Record, error)

	// Update persists changes to an existing record. The purchasing-order
	// link written here is what removes a record from future eligibility scans.
	Update(ctx context.Context, aggregate *logistic.Record) error

	// GetEligibleForPurchasing retrieves records ready to be converted into
	// purchase orders: status is one of statusIDs (the closed/logistic set),
	// no purchasing order attached yet, and a provider set. Results are
	// deduplicated by record id and capped at limit. An empty result is not
	// an error.
	GetEligibleForPurchasing(ctx context.Context, statusIDs []kernel.UUID, limit int) ([]*logistic.Record, error)
}
