// Package people models the parties an order references: clients,
// providers, payers and carriers are all People rows.
package people

import (
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/pkg/errs"
)

var (
	ErrPeopleIsNotConstructed = errs.NewValueIsRequiredError("People must be created via NewPeople")
	ErrPeopleNameIsRequired   = errs.NewValueIsRequiredError("people name")
)

// People is a company or person participating in orders.
type People struct {
	id   kernel.UUID
	name string

	// paymentDays is the party's negotiated payment term in days;
	// zero means the tenant default applies
	paymentDays int

	isConstructed bool
}

// NewPeople creates a validated party.
func NewPeople(id kernel.UUID, name string, paymentDays int) (*People, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrPeopleNameIsRequired
	}
	if paymentDays < 0 {
		return nil, errs.NewValueIsOutOfRangeError("payment days", paymentDays, 0, 365)
	}

	return &People{
		id:            id,
		name:          name,
		paymentDays:   paymentDays,
		isConstructed: true,
	}, nil
}

// Validate ensures the People was created through NewPeople.
func (p *People) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPeopleIsNotConstructed
	}
	return nil
}

// ID returns the party identifier.
func (p *People) ID() kernel.UUID {
	return p.id
}

// Name returns the party's display name.
func (p *People) Name() string {
	return p.name
}

// PaymentDays returns the negotiated payment term in days, zero when the
// tenant default applies.
func (p *People) PaymentDays() int {
	return p.paymentDays
}
