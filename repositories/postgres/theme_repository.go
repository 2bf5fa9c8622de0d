package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tripforge/backend/models"
	"github.com/tripforge/backend/repositories"
)

// ThemeRepository is the PostgreSQL implementation of repositories.ThemeRepository
type ThemeRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewThemeRepository creates a ThemeRepository
func NewThemeRepository(db *DB, logger *zap.Logger) *ThemeRepository {
	return &ThemeRepository{db: db, logger: logger}
}

var _ repositories.ThemeRepository = (*ThemeRepository)(nil)

// Get retrieves the stored overrides for a tenant, or nil when none exist
func (r *ThemeRepository) Get(ctx context.Context, tenantID string) (*models.ThemeOverrides, error) {
	var overridesJSON []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT overrides FROM theme_overrides WHERE tenant_id = $1`, tenantID).
		Scan(&overridesJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get theme overrides for %s: %w", tenantID, err)
	}

	var overrides models.ThemeOverrides
	if err := json.Unmarshal(overridesJSON, &overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal theme overrides: %w", err)
	}
	return &overrides, nil
}

// Upsert inserts or replaces the overrides for a tenant
func (r *ThemeRepository) Upsert(ctx context.Context, tenantID string, overrides *models.ThemeOverrides) error {
	overridesJSON, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("failed to marshal theme overrides: %w", err)
	}

	query := `
		INSERT INTO theme_overrides (tenant_id, overrides, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (tenant_id) DO UPDATE SET
			overrides = EXCLUDED.overrides,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, tenantID, overridesJSON, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert theme overrides for %s: %w", tenantID, err)
	}

	r.logger.Debug("theme overrides upserted", zap.String("tenant_id", tenantID))
	return nil
}

// Delete removes the overrides for a tenant, reporting whether a row existed
func (r *ThemeRepository) Delete(ctx context.Context, tenantID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM theme_overrides WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return false, fmt.Errorf("failed to delete theme overrides for %s: %w", tenantID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
