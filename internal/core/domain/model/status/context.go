package status

import (
	"fmt"

	"logistic/internal/pkg/errs"
)

// Context scopes a status to the part of the model it describes.
// The same display name may exist in several contexts with unrelated meaning.
type Context int

const (
	// ContextUnknown represents an invalid or undefined context.
	ContextUnknown Context = iota

	// ContextLogistic scopes statuses attached to logistic records.
	ContextLogistic

	// ContextInvoice scopes statuses attached to receivable invoices.
	ContextInvoice
)

func getContextStrings() map[Context]string {
	return map[Context]string{
		ContextUnknown:  "unknown",
		ContextLogistic: "logistic",
		ContextInvoice:  "invoice",
	}
}

// ParseContext maps a stored context name back to its Context value.
// Unrecognized names return an error rather than ContextUnknown so that
// corrupt rows surface during reconstruction.
func ParseContext(s string) (Context, error) {
	for context, str := range getContextStrings() {
		if str == s && context != ContextUnknown {
			return context, nil
		}
	}
	return ContextUnknown, errs.NewValueIsInvalidErrorWithCause(
		"context is invalid",
		fmt.Errorf("%q is not a known status context", s),
	)
}

// Validate checks that the context is one of the defined values.
func (c Context) Validate() error {
	if c != ContextLogistic && c != ContextInvoice {
		return errs.NewValueIsInvalidErrorWithCause(
			"context is invalid",
			fmt.Errorf("%d is not a valid status context", c),
		)
	}
	return nil
}

// String returns the stored name of the context.
func (c Context) String() string {
	if str, ok := getContextStrings()[c]; ok {
		return str
	}
	return "unknown"
}
