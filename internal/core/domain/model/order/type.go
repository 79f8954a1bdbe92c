package order

import (
	"fmt"

	"logistic/internal/pkg/errs"
)

// Type tags an order as a sale or a purchase. Purchase orders generated by
// the logistic workflow always reference the sale they fulfill.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	// This value (0) helps catch uninitialized Type values.
	TypeUnknown Type = iota

	// Sale is an order placed by a client with one of our companies.
	Sale

	// Purchase is an order placed by one of our companies with a supplier
	// or carrier, typically cloned from a sale.
	Purchase
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "unknown",
		Sale:        "sale",
		Purchase:    "purchase",
	}
}

// ParseType maps a stored type tag back to its Type value.
func ParseType(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order type is invalid",
		fmt.Errorf("%q is not a known order type", s),
	)
}

// Validate checks that the type is one of the defined values.
func (t Type) Validate() error {
	if t != Sale && t != Purchase {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type is invalid",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the stored tag of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
