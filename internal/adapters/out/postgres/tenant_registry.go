package postgres

import (
	"context"
	"fmt"
	"sync"

	"logistic/internal/core/ports"
	"logistic/internal/pkg/errs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TenantConfig couples a tenant's domain name with its database DSN.
type TenantConfig struct {
	Name string
	DSN  string
}

// OpenFunc opens a GORM connection for a DSN. Injected so tests can swap
// the postgres driver for sqlite.
type OpenFunc func(dsn string) (*gorm.DB, error)

// PostgresOpen is the production OpenFunc.
func PostgresOpen(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

// GormTenantRegistry implements TenantRegistry over a static tenant list.
// Connections are opened lazily on first activation and cached; every
// tenant gets its own isolated *gorm.DB and unit of work factory.
type GormTenantRegistry struct {
	configs []TenantConfig
	open    OpenFunc

	mu       sync.Mutex
	sessions map[string]ports.TenantSession
}

// NewGormTenantRegistry creates a registry for the configured tenants.
// A nil open falls back to PostgresOpen.
func NewGormTenantRegistry(configs []TenantConfig, open OpenFunc) *GormTenantRegistry {
	if open == nil {
		open = PostgresOpen
	}
	return &GormTenantRegistry{
		configs:  configs,
		open:     open,
		sessions: make(map[string]ports.TenantSession),
	}
}

// Tenants lists every configured tenant in configuration order.
func (r *GormTenantRegistry) Tenants(_ context.Context) ([]ports.Tenant, error) {
	tenants := make([]ports.Tenant, 0, len(r.configs))
	for _, config := range r.configs {
		tenants = append(tenants, ports.Tenant{Name: config.Name})
	}
	return tenants, nil
}

// Activate opens (or reuses) the tenant's store and returns a session
// bound to it.
func (r *GormTenantRegistry) Activate(_ context.Context, tenant ports.Tenant) (ports.TenantSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[tenant.Name]; ok {
		return session, nil
	}

	config, ok := r.lookup(tenant.Name)
	if !ok {
		return ports.TenantSession{}, errs.NewObjectNotFoundError("tenant", tenant.Name)
	}

	db, err := r.open(config.DSN)
	if err != nil {
		return ports.TenantSession{}, fmt.Errorf("open tenant store %q: %w", tenant.Name, err)
	}

	session := ports.TenantSession{
		Tenant:     ports.Tenant{Name: config.Name},
		UoWFactory: NewGormUnitOfWorkFactory(db),
		ReadDB:     db,
	}
	r.sessions[tenant.Name] = session
	return session, nil
}

func (r *GormTenantRegistry) lookup(name string) (TenantConfig, bool) {
	for _, config := range r.configs {
		if config.Name == name {
			return config, true
		}
	}
	return TenantConfig{}, false
}
