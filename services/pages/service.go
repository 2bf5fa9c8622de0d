// Package pages manages stored page records: serialized composition trees
// plus optional page-level theme overrides. The service validates tree
// structure before storing and resolves the effective theme on read.
package pages

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tripforge/backend/internal/theme"
	"github.com/tripforge/backend/models"
	"github.com/tripforge/backend/repositories"
	"github.com/tripforge/backend/services"
)

// ResolvedPage is a page record with its effective theme computed from the
// tenant base plus the page's overrides.
type ResolvedPage struct {
	Page  *models.Page       `json:"page"`
	Theme models.ThemeConfig `json:"theme"`
}

// Service orchestrates page persistence and theme resolution
type Service struct {
	repo   repositories.PageRepository
	logger *zap.Logger
}

// NewService creates a pages service
func NewService(repo repositories.PageRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get retrieves a page and resolves its effective theme against the tenant
// base. Overrides must be resolved before rendering; the renderer itself
// never merges tokens.
func (s *Service) Get(ctx context.Context, tenant *models.Tenant, slug string) (*ResolvedPage, error) {
	page, err := s.repo.GetBySlug(ctx, tenant.ID, slug)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeInternal,
			"failed to load page", err)
	}
	if page == nil {
		return nil, services.ErrPageNotFound.WithDetail("slug", slug)
	}

	return &ResolvedPage{
		Page:  page,
		Theme: theme.Apply(tenant.Theme, page.Overrides),
	}, nil
}

// List returns all page records for a tenant
func (s *Service) List(ctx context.Context, tenant *models.Tenant) ([]*models.Page, error) {
	pages, err := s.repo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeInternal,
			"failed to list pages", err)
	}
	return pages, nil
}

// Save validates and stores a page record. An existing page keeps its id
// and creation time; overrides equal to the tenant base are stored as nil.
func (s *Service) Save(ctx context.Context, tenant *models.Tenant, slug, title string, tree models.ComponentTree, overrides *models.ThemeOverrides) (*models.Page, error) {
	if err := tree.Validate(); err != nil {
		return nil, services.NewDomainError(services.ErrorTypeValidation,
			fmt.Sprintf("invalid component tree: %v", err), err)
	}
	if overrides != nil && overrides.IsZero() {
		overrides = nil
	}

	existing, err := s.repo.GetBySlug(ctx, tenant.ID, slug)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeInternal,
			"failed to load page", err)
	}

	var page *models.Page
	if existing != nil {
		page = existing
		page.Title = title
		page.Tree = tree
		page.Overrides = overrides
		page.UpdatedAt = time.Now()
	} else {
		page = models.NewPage(tenant.ID, slug, tree)
		page.Title = title
		page.Overrides = overrides
	}

	if err := s.repo.Upsert(ctx, page); err != nil {
		return nil, services.NewDomainError(services.ErrorTypeInternal,
			"failed to store page", err)
	}

	s.logger.Info("page saved",
		zap.String("tenant_id", tenant.ID),
		zap.String("slug", slug),
		zap.Int("nodes", len(tree)))
	return page, nil
}

// Delete removes a page record
func (s *Service) Delete(ctx context.Context, tenant *models.Tenant, slug string) error {
	deleted, err := s.repo.Delete(ctx, tenant.ID, slug)
	if err != nil {
		return services.NewDomainError(services.ErrorTypeInternal,
			"failed to delete page", err)
	}
	if !deleted {
		return services.ErrPageNotFound.WithDetail("slug", slug)
	}
	return nil
}
