// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"fmt"

	"logistic/internal/pkg/errs"
)

// CommitStrategy selects how the transformation's persistence steps are
// committed. The steps are always executed in the same order; the strategy
// only decides where the transaction boundaries fall.
type CommitStrategy int

const (
	// CommitUnknown represents an invalid or undefined strategy.
	CommitUnknown CommitStrategy = iota

	// CommitAtomic wraps every step of one transformation in a single
	// transaction. A failure at any step leaves the record untouched.
	CommitAtomic

	// CommitPerStep commits after each persistence step. A failure leaves
	// the earlier steps committed; the idempotency guard on the logistic
	// record prevents a second purchase order on retry.
	CommitPerStep
)

func getCommitStrategyStrings() map[CommitStrategy]string {
	return map[CommitStrategy]string{
		CommitUnknown: "unknown",
		CommitAtomic:  "atomic",
		CommitPerStep: "per_step",
	}
}

// ParseCommitStrategy maps a configured strategy name to its value.
func ParseCommitStrategy(s string) (CommitStrategy, error) {
	for strategy, str := range getCommitStrategyStrings() {
		if str == s && strategy != CommitUnknown {
			return strategy, nil
		}
	}
	return CommitUnknown, errs.NewValueIsInvalidErrorWithCause(
		"commit strategy is invalid",
		fmt.Errorf("%q is not a valid commit strategy", s),
	)
}

// Validate checks that the strategy is one of the defined values.
func (s CommitStrategy) Validate() error {
	if s != CommitAtomic && s != CommitPerStep {
		return errs.NewValueIsInvalidErrorWithCause(
			"commit strategy is invalid",
			fmt.Errorf("%d is not a valid commit strategy", s),
		)
	}
	return nil
}

// String returns the configured name of the strategy.
func (s CommitStrategy) String() string {
	if str, ok := getCommitStrategyStrings()[s]; ok {
		return str
	}
	return "unknown"
}
