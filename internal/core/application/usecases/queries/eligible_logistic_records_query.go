// Package queries contains read-only operations that bypass the domain
// model and repositories, reading directly from the database for
// reporting and API surfaces.
package queries

import (
	"errors"

	"logistic/internal/pkg/errs"
	"logistic/internal/pkg/guard"
)

// DefaultEligibleLimit caps the listing when the caller does not ask for
// a specific page size.
const DefaultEligibleLimit = 10

var (
	ErrEligibleLogisticRecordsQueryIsNotConstructed = errors.New(
		"EligibleLogisticRecordsQuery must be created via NewEligibleLogisticRecordsQuery constructor",
	)
)

// EligibleLogisticRecordsQuery lists logistic records that are closed but
// not yet turned into a purchase order. This is the same candidate set the
// notification batch consumes, exposed for monitoring.
//
// Example:
//
//	query, err := NewEligibleLogisticRecordsQuery(20)
//	if err != nil {
//	    return err
//	}
//	handler := NewEligibleLogisticRecordsQueryHandler(db)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list eligible records: %w", err)
//	}
//
//	fmt.Printf("Found %d records awaiting purchasing\n", len(records))
type EligibleLogisticRecordsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewEligibleLogisticRecordsQuery creates a query for eligible logistic
// records. A non-positive limit falls back to DefaultEligibleLimit.
func NewEligibleLogisticRecordsQuery(limit int) (EligibleLogisticRecordsQuery, error) {
	if limit > 10000 {
		return EligibleLogisticRecordsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, 10000)
	}
	if limit <= 0 {
		limit = DefaultEligibleLimit
	}

	return EligibleLogisticRecordsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Limit returns the maximum number of records to list.
func (q EligibleLogisticRecordsQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
// Returns ErrEligibleLogisticRecordsQueryIsNotConstructed if validation fails.
func (q EligibleLogisticRecordsQuery) Validate() error {
	return q.guard.Validate(ErrEligibleLogisticRecordsQueryIsNotConstructed)
}
