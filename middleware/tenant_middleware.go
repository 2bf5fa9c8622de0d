package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tripforge/backend/internal/tenant"
	"github.com/tripforge/backend/utils"
)

// TenantHeader is the request header carrying the tenant identifier when
// the route does not include a tenantID parameter.
const TenantHeader = "X-Tenant-ID"

// TenantMiddleware resolves the tenant identifier on each request against
// the registry and stores the record in the request context. Handlers
// behind it never see an unresolved tenant.
type TenantMiddleware struct {
	registry *tenant.Registry
	logger   *zap.Logger
}

// NewTenantMiddleware creates a TenantMiddleware
func NewTenantMiddleware(registry *tenant.Registry, logger *zap.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		registry: registry,
		logger:   logger,
	}
}

// Resolve looks up the tenant from the route parameter or header and
// rejects unknown identifiers with 404.
func (m *TenantMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := chi.URLParam(r, "tenantID")
		if tenantID == "" {
			tenantID = r.Header.Get(TenantHeader)
		}
		if tenantID == "" {
			_ = utils.WriteBadRequest(w, "tenant identifier is required", nil)
			return
		}

		record, ok := m.registry.Get(tenantID)
		if !ok {
			m.logger.Debug("unknown tenant", zap.String("tenant_id", tenantID))
			_ = utils.WriteNotFound(w, "tenant not found")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), record)))
	})
}
