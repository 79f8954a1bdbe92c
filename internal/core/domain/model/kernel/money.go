package kernel

import (
	"fmt"

	"logistic/internal/pkg/errs"
)

// ErrMoneyIsNegative indicates an attempt to construct a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a monetary amount in the tenant's
// currency. Amounts are stored as integer cents to keep arithmetic exact;
// order prices, logistic payouts and invoice totals all use this type.
//
// The zero value is a valid amount of zero. Money is immutable.
//
// Example:
//
//	price, err := kernel.NewMoneyFromCents(10000) // 100.00
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(price) // "100.00"
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money amount from integer cents.
// Negative amounts are rejected: the model never carries debts as
// negative prices, refunds are separate documents.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "80.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
