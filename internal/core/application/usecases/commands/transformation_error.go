package commands

import (
	"fmt"

	"logistic/internal/core/domain/model/kernel"
)

// Transformation step names used in TransformationError reports.
const (
	StepCloneOrder          = "clone order"
	StepAttachPurchaseOrder = "attach purchase order"
	StepCreateInvoice       = "create invoice"
	StepLinkInvoice         = "link invoice"
)

// TransformationError reports the failure of one transformation step for
// one logistic record. The batch surfaces it in the report and moves on;
// it never aborts the run.
type TransformationError struct {
	Step     string
	RecordID kernel.UUID

	cause error
}

// NewTransformationError wraps a step failure for the given record.
func NewTransformationError(step string, recordID kernel.UUID, cause error) *TransformationError {
	return &TransformationError{
		Step:     step,
		RecordID: recordID,
		cause:    cause,
	}
}

// Error implements the error interface.
func (e *TransformationError) Error() string {
	return fmt.Sprintf("transformation step %q failed for logistic record %s: %v",
		e.Step, e.RecordID, e.cause)
}

// Unwrap returns the underlying cause.
func (e *TransformationError) Unwrap() error {
	return e.cause
}
