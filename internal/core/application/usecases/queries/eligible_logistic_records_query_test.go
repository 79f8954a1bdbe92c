package queries_test

import (
	"testing"

	"logistic/internal/core/application/usecases/queries"
	"logistic/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEligibleLogisticRecordsQuery_Valid(t *testing.T) {
	query, err := queries.NewEligibleLogisticRecordsQuery(20)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 20, query.Limit())
}

func TestNewEligibleLogisticRecordsQuery_ZeroLimitFallsBack(t *testing.T) {
	query, err := queries.NewEligibleLogisticRecordsQuery(0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultEligibleLimit, query.Limit())
}

func TestNewEligibleLogisticRecordsQuery_NegativeLimitFallsBack(t *testing.T) {
	query, err := queries.NewEligibleLogisticRecordsQuery(-5)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultEligibleLimit, query.Limit())
}

func TestNewEligibleLogisticRecordsQuery_LimitTooLarge(t *testing.T) {
	_, err := queries.NewEligibleLogisticRecordsQuery(10001)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestEligibleLogisticRecordsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.EligibleLogisticRecordsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrEligibleLogisticRecordsQueryIsNotConstructed)
}
