// Package repositories defines the persistence interfaces for page records
// and tenant theme overrides. Implementations live in subpackages.
package repositories

import (
	"context"

	"github.com/tripforge/backend/models"
)

// PageRepository stores serialized page composition trees keyed by tenant
// and slug.
type PageRepository interface {
	// GetBySlug retrieves a page by tenant id and slug
	GetBySlug(ctx context.Context, tenantID, slug string) (*models.Page, error)

	// ListByTenant lists all pages for a tenant
	ListByTenant(ctx context.Context, tenantID string) ([]*models.Page, error)

	// Upsert inserts or replaces a page record
	Upsert(ctx context.Context, page *models.Page) error

	// Delete removes a page; returns sql.ErrNoRows-equivalent absence as nil rows affected
	Delete(ctx context.Context, tenantID, slug string) (bool, error)
}

// ThemeRepository stores tenant-level theme overrides
type ThemeRepository interface {
	// Get retrieves the stored overrides for a tenant, or nil when none exist
	Get(ctx context.Context, tenantID string) (*models.ThemeOverrides, error)

	// Upsert inserts or replaces the overrides for a tenant
	Upsert(ctx context.Context, tenantID string, overrides *models.ThemeOverrides) error

	// Delete removes the overrides for a tenant
	Delete(ctx context.Context, tenantID string) (bool, error)
}
