// Package targets implements the notification-target machinery: a closed
// mapping from target names to handlers, the per-order envelope contract
// and the dispatcher that drives envelopes through their callbacks.
package targets

import (
	"errors"
	"fmt"
	"strings"

	"logistic/internal/pkg/errs"
)

// Row limits governing how many candidates a run processes. The command
// surface and the handlers historically disagreed on the default; both
// constants are kept explicit so configuration decides which one applies.
const (
	// DefaultBatchLimit is the limit applied by the CLI and the scheduler
	// when the operator does not pass one.
	DefaultBatchLimit = 100

	// DefaultFetchLimit is the limit a handler falls back to when invoked
	// without an explicit limit (zero or negative).
	DefaultFetchLimit = 10
)

// ErrTargetNotDefined is returned when a target name resolves to no handler.
// An unknown target is a configuration mistake, not a data condition: the
// whole run aborts before any tenant is touched.
var ErrTargetNotDefined = errors.New("notification target is not defined")

// Target enumerates the notification/fulfillment workflows the batch can run.
type Target int

const (
	// TargetUnknown represents an unrecognized target name.
	TargetUnknown Target = iota

	// TargetCreateLogisticInvoice converts closed logistic records into
	// purchase orders plus freight invoices.
	TargetCreateLogisticInvoice
)

func getTargetStrings() map[Target]string {
	return map[Target]string{
		TargetUnknown:               "unknown",
		TargetCreateLogisticInvoice: "create_logistic_invoice",
	}
}

// ParseTarget resolves a target name to its Target value. Matching is
// case-insensitive and ignores word separators, so "create_logistic_invoice",
// "Create Logistic-Invoice" and "CreateLogisticInvoice" are all accepted.
func ParseTarget(name string) (Target, error) {
	canonical := canonicalTargetName(name)
	for target, str := range getTargetStrings() {
		if target != TargetUnknown && canonicalTargetName(str) == canonical {
			return target, nil
		}
	}
	return TargetUnknown, fmt.Errorf("%w: %q", ErrTargetNotDefined, name)
}

// canonicalTargetName lowercases a name and strips the word separators
// operators tend to vary: underscores, hyphens and spaces.
func canonicalTargetName(name string) string {
	replacer := strings.NewReplacer("_", "", "-", "", " ", "")
	return replacer.Replace(strings.ToLower(name))
}

// Validate checks that the target is one of the defined values.
func (t Target) Validate() error {
	if t != TargetCreateLogisticInvoice {
		return errs.NewValueIsInvalidErrorWithCause(
			"target is invalid",
			fmt.Errorf("%d is not a valid notification target", t),
		)
	}
	return nil
}

// String returns the canonical name of the target.
func (t Target) String() string {
	if str, ok := getTargetStrings()[t]; ok {
		return str
	}
	return "unknown"
}
