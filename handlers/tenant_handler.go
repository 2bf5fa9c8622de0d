package handlers

import (
	"net/http"

	"github.com/tripforge/backend/app"
	"github.com/tripforge/backend/middleware"
	"github.com/tripforge/backend/models"
)

// TenantSummary is the list-view projection of a tenant record
type TenantSummary struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	EnabledVerticals []models.Vertical `json:"enabled_verticals"`
}

// ListTenantsHandler lists the registered tenants
func ListTenantsHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := make([]TenantSummary, 0, deps.Registry.Len())
		for _, id := range deps.Registry.IDs() {
			t, _ := deps.Registry.Get(id)
			summaries = append(summaries, TenantSummary{
				ID:               t.ID,
				Name:             t.Name,
				EnabledVerticals: t.EnabledVerticals,
			})
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: summaries})
	}
}

// GetTenantHandler returns the full configuration of the resolved tenant,
// with the theme resolved against any stored tenant-level overrides.
func GetTenantHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		theme := t.Theme
		if deps.ThemeService != nil {
			resolved, err := deps.ThemeService.Resolve(r.Context(), t)
			if err != nil {
				HandleServiceError(w, err, deps.Logger)
				return
			}
			theme = resolved
		}

		response := struct {
			*models.Tenant
			Theme models.ThemeConfig `json:"theme"`
		}{Tenant: t, Theme: theme}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: response})
	}
}
