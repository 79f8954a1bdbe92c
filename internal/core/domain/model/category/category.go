// Package category models named classifications scoped to a context,
// such as the "Frete" expense category freight invoices are filed under.
package category

import (
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/pkg/errs"
)

// ContextExpense scopes categories used to classify payable/receivable
// expenses. Other contexts (product, support, ...) exist in the wider
// system but are not used by this workflow.
const ContextExpense = "expense"

var (
	ErrCategoryIsNotConstructed  = errs.NewValueIsRequiredError("Category must be created via NewCategory")
	ErrCategoryNameIsRequired    = errs.NewValueIsRequiredError("category name")
	ErrCategoryContextIsRequired = errs.NewValueIsRequiredError("category context")
)

// Category is a named classification, optionally restricted to the
// companies that own it.
type Category struct {
	id      kernel.UUID
	name    string
	context string

	// companyIDs restricts the category to its owning companies;
	// empty means the category is global
	companyIDs []kernel.UUID

	isConstructed bool
}

// NewCategory creates a validated category.
func NewCategory(id kernel.UUID, name, context string, companyIDs []kernel.UUID) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrCategoryNameIsRequired
	}
	if context == "" {
		return nil, ErrCategoryContextIsRequired
	}
	for _, companyID := range companyIDs {
		if err := companyID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Category{
		id:            id,
		name:          name,
		context:       context,
		companyIDs:    append([]kernel.UUID(nil), companyIDs...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Category was created through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name, e.g. "Frete".
func (c *Category) Name() string {
	return c.name
}

// Context returns the context the category belongs to, e.g. "expense".
func (c *Category) Context() string {
	return c.context
}

// Companies returns the owning companies; empty means global.
func (c *Category) Companies() []kernel.UUID {
	return append([]kernel.UUID(nil), c.companyIDs...)
}

// OwnedByAny reports whether the category is owned by at least one of the
// given companies. Global categories match any owner.
func (c *Category) OwnedByAny(companyIDs []kernel.UUID) bool {
	if len(c.companyIDs) == 0 {
		return true
	}
	for _, owner := range c.companyIDs {
		for _, candidate := range companyIDs {
			if owner.IsEqual(candidate) {
				return true
			}
		}
	}
	return false
}
