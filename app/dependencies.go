package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tripforge/backend/config"
	"github.com/tripforge/backend/internal/observability"
	"github.com/tripforge/backend/internal/providers"
	"github.com/tripforge/backend/internal/tenant"
	"github.com/tripforge/backend/middleware"
	"github.com/tripforge/backend/repositories"
	"github.com/tripforge/backend/repositories/postgres"
	"github.com/tripforge/backend/services/pages"
	searchsvc "github.com/tripforge/backend/services/search"
	"github.com/tripforge/backend/services/themes"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection: the tenant
// registry is built once here and handed to every consumer explicitly.
type Dependencies struct {
	// Infrastructure
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *observability.Metrics
	DB      *postgres.DB // nil when persistence is not configured

	// Domain
	Registry *tenant.Registry
	Provider providers.SearchProvider

	// Repositories (nil when persistence is not configured)
	Pages  repositories.PageRepository
	Themes repositories.ThemeRepository

	// Services
	SearchService *searchsvc.Service
	PageService   *pages.Service
	ThemeService  *themes.Service

	// Middleware
	TenantMiddleware *middleware.TenantMiddleware
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewMetrics(),
	}

	registry, err := tenant.LoadCatalog(cfg.Tenants.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant catalog: %w", err)
	}
	deps.Registry = registry
	logger.Info("tenant registry loaded",
		zap.Int("tenants", registry.Len()),
		zap.String("catalog", cfg.Tenants.CatalogPath))

	if err := deps.initPersistence(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize persistence: %w", err)
	}

	deps.Provider = providers.NewStubProvider()
	deps.SearchService = searchsvc.NewService(deps.Provider, deps.Metrics, logger)
	deps.TenantMiddleware = middleware.NewTenantMiddleware(registry, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initPersistence opens the database and wires page/theme repositories and
// services. Without a database configuration the service still serves
// search and tenant lookups; only page/theme storage is unavailable.
func (d *Dependencies) initPersistence(ctx context.Context, cfg *config.Config) error {
	if cfg.Database == nil {
		d.Logger.Warn("no database configured, page and theme endpoints disabled")
		return nil
	}

	db, err := postgres.NewDB(*cfg.Database, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}
	if err := db.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	d.DB = db
	d.Pages = postgres.NewPageRepository(db, d.Logger)
	d.Themes = postgres.NewThemeRepository(db, d.Logger)
	d.PageService = pages.NewService(d.Pages, d.Logger)
	d.ThemeService = themes.NewService(d.Themes, d.Logger)
	return nil
}

// PersistenceEnabled reports whether page/theme storage is available
func (d *Dependencies) PersistenceEnabled() bool {
	return d.DB != nil
}

// Close releases held resources
func (d *Dependencies) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
