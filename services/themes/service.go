// Package themes manages tenant-level theme customization. Stored state is
// always the minimal diff against the tenant base: a submitted full
// configuration is reduced with ExtractDiff before persisting, and reads
// resolve the diff back through Apply.
package themes

import (
	"context"

	"go.uber.org/zap"

	"github.com/tripforge/backend/internal/theme"
	"github.com/tripforge/backend/models"
	"github.com/tripforge/backend/repositories"
	"github.com/tripforge/backend/services"
)

// Service orchestrates theme override persistence and resolution
type Service struct {
	repo   repositories.ThemeRepository
	logger *zap.Logger
}

// NewService creates a themes service
func NewService(repo repositories.ThemeRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Resolve returns the tenant's effective theme: the base configuration with
// any stored overrides applied. A tenant with no stored overrides resolves
// to its base unchanged.
func (s *Service) Resolve(ctx context.Context, tenant *models.Tenant) (models.ThemeConfig, error) {
	overrides, err := s.repo.Get(ctx, tenant.ID)
	if err != nil {
		return models.ThemeConfig{}, services.NewDomainError(services.ErrorTypeInternal,
			"failed to load theme overrides", err)
	}
	return theme.Apply(tenant.Theme, overrides), nil
}

// Overrides returns the stored override object for a tenant, or nil
func (s *Service) Overrides(ctx context.Context, tenant *models.Tenant) (*models.ThemeOverrides, error) {
	overrides, err := s.repo.Get(ctx, tenant.ID)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeInternal,
			"failed to load theme overrides", err)
	}
	return overrides, nil
}

// SaveModified stores the minimal diff between the tenant base and a full
// modified configuration. Submitting a configuration identical to the base
// clears any stored overrides.
func (s *Service) SaveModified(ctx context.Context, tenant *models.Tenant, modified models.ThemeConfig) (*models.ThemeOverrides, error) {
	diff := theme.ExtractDiff(tenant.Theme, modified)
	if diff.IsZero() {
		if _, err := s.repo.Delete(ctx, tenant.ID); err != nil {
			return nil, services.NewDomainError(services.ErrorTypeInternal,
				"failed to clear theme overrides", err)
		}
		s.logger.Info("theme overrides cleared", zap.String("tenant_id", tenant.ID))
		return nil, nil
	}

	if err := s.repo.Upsert(ctx, tenant.ID, &diff); err != nil {
		return nil, services.NewDomainError(services.ErrorTypeInternal,
			"failed to store theme overrides", err)
	}

	s.logger.Info("theme overrides saved", zap.String("tenant_id", tenant.ID))
	return &diff, nil
}

// Clear removes any stored overrides for the tenant
func (s *Service) Clear(ctx context.Context, tenant *models.Tenant) error {
	deleted, err := s.repo.Delete(ctx, tenant.ID)
	if err != nil {
		return services.NewDomainError(services.ErrorTypeInternal,
			"failed to clear theme overrides", err)
	}
	if !deleted {
		return services.ErrThemeNotFound
	}
	return nil
}
