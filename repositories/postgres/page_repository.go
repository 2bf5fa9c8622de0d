package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tripforge/backend/models"
	"github.com/tripforge/backend/repositories"
)

// PageRepository is the PostgreSQL implementation of repositories.PageRepository.
// The component tree and overrides are stored as JSONB.
type PageRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewPageRepository creates a PageRepository
func NewPageRepository(db *DB, logger *zap.Logger) *PageRepository {
	return &PageRepository{db: db, logger: logger}
}

var _ repositories.PageRepository = (*PageRepository)(nil)

// GetBySlug retrieves a page by tenant id and slug
func (r *PageRepository) GetBySlug(ctx context.Context, tenantID, slug string) (*models.Page, error) {
	query := `
		SELECT id, tenant_id, slug, title, tree, overrides, created_at, updated_at
		FROM pages
		WHERE tenant_id = $1 AND slug = $2`

	page, err := scanPage(r.db.QueryRowContext(ctx, query, tenantID, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page %s/%s: %w", tenantID, slug, err)
	}
	return page, nil
}

// ListByTenant lists all pages for a tenant ordered by slug
func (r *PageRepository) ListByTenant(ctx context.Context, tenantID string) ([]*models.Page, error) {
	query := `
		SELECT id, tenant_id, slug, title, tree, overrides, created_at, updated_at
		FROM pages
		WHERE tenant_id = $1
		ORDER BY slug`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page row: %w", err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate page rows: %w", err)
	}
	return pages, nil
}

// Upsert inserts or replaces a page record keyed by (tenant_id, slug)
func (r *PageRepository) Upsert(ctx context.Context, page *models.Page) error {
	treeJSON, err := json.Marshal(page.Tree)
	if err != nil {
		return fmt.Errorf("failed to marshal component tree: %w", err)
	}

	var overridesJSON []byte
	if page.Overrides != nil {
		overridesJSON, err = json.Marshal(page.Overrides)
		if err != nil {
			return fmt.Errorf("failed to marshal page overrides: %w", err)
		}
	}

	query := `
		INSERT INTO pages (id, tenant_id, slug, title, tree, overrides, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tenant_id, slug) DO UPDATE SET
			title = EXCLUDED.title,
			tree = EXCLUDED.tree,
			overrides = EXCLUDED.overrides,
			updated_at = EXCLUDED.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		page.ID, page.TenantID, page.Slug, page.Title,
		treeJSON, nullableBytes(overridesJSON), page.CreatedAt, page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert page %s/%s: %w", page.TenantID, page.Slug, err)
	}

	r.logger.Debug("page upserted",
		zap.String("tenant_id", page.TenantID),
		zap.String("slug", page.Slug))
	return nil
}

// Delete removes a page, reporting whether a row was deleted
func (r *PageRepository) Delete(ctx context.Context, tenantID, slug string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM pages WHERE tenant_id = $1 AND slug = $2`, tenantID, slug)
	if err != nil {
		return false, fmt.Errorf("failed to delete page %s/%s: %w", tenantID, slug, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanPage
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*models.Page, error) {
	var page models.Page
	var title sql.NullString
	var treeJSON []byte
	var overridesJSON []byte

	err := row.Scan(&page.ID, &page.TenantID, &page.Slug, &title,
		&treeJSON, &overridesJSON, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return nil, err
	}

	page.Title = title.String
	if err := json.Unmarshal(treeJSON, &page.Tree); err != nil {
		return nil, fmt.Errorf("failed to unmarshal component tree: %w", err)
	}
	if len(overridesJSON) > 0 {
		var overrides models.ThemeOverrides
		if err := json.Unmarshal(overridesJSON, &overrides); err != nil {
			return nil, fmt.Errorf("failed to unmarshal page overrides: %w", err)
		}
		page.Overrides = &overrides
	}
	return &page, nil
}

// nullableBytes returns nil for empty byte slices so the column stores NULL
func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
