package ports

import (
	"context"

	"gorm.io/gorm"
)

// Tenant identifies one isolated data store processed by the batch.
type Tenant struct {
	// Name is the tenant's domain name, used in report output and logs.
	Name string
}

// TenantSession is everything the batch needs to work against one tenant:
// a unit-of-work factory for writes and a read handle for queries.
// Sessions from different tenants must never share state.
type TenantSession struct {
	Tenant     Tenant
	UoWFactory UnitOfWorkFactory
	ReadDB     *gorm.DB
}

// TenantRegistry enumerates tenants and activates them one at a time.
// Activation fully switches data access to the tenant's isolated store;
// a failed activation skips that tenant only and the batch continues.
type TenantRegistry interface {
	// Tenants lists every known tenant.
	Tenants(ctx context.Context) ([]Tenant, error)

	// Activate opens (or reuses) the tenant's store and returns a session
	// bound to it.
	Activate(ctx context.Context, tenant Tenant) (TenantSession, error)
}
