// Package tenant holds the in-memory tenant registry. The registry is built
// once at startup from static tenant definitions and is read-only afterwards,
// so lookups need no locking and may run from any goroutine.
package tenant

import (
	"fmt"
	"sort"

	"github.com/tripforge/backend/models"
)

// Registry maps tenant ids to their complete configuration records.
// Construct with New and inject explicitly; there is no ambient lookup.
type Registry struct {
	tenants map[string]*models.Tenant
}

// New builds a registry from tenant records, enforcing the registry
// invariants: ids are unique and every tenant enables at least one vertical.
func New(tenants []models.Tenant) (*Registry, error) {
	byID := make(map[string]*models.Tenant, len(tenants))
	for i := range tenants {
		t := tenants[i]
		if t.ID == "" {
			return nil, fmt.Errorf("tenant at index %d has no id", i)
		}
		if _, exists := byID[t.ID]; exists {
			return nil, fmt.Errorf("duplicate tenant id %q", t.ID)
		}
		if len(t.EnabledVerticals) == 0 {
			return nil, fmt.Errorf("tenant %q enables no verticals", t.ID)
		}
		byID[t.ID] = &t
	}
	return &Registry{tenants: byID}, nil
}

// Get returns the tenant record for id. The caller owns the not-found
// condition; the registry never fabricates a tenant.
func (r *Registry) Get(id string) (*models.Tenant, bool) {
	t, ok := r.tenants[id]
	return t, ok
}

// IDs returns all tenant ids in sorted order
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.tenants))
	for id := range r.tenants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered tenants
func (r *Registry) Len() int {
	return len(r.tenants)
}
