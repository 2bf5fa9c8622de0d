package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tripforge/backend/app"
	"github.com/tripforge/backend/middleware"
	"github.com/tripforge/backend/models"
	"github.com/tripforge/backend/utils"
)

// ThemeResponse carries the resolved theme plus the stored override diff
type ThemeResponse struct {
	Theme     models.ThemeConfig     `json:"theme"`
	Overrides *models.ThemeOverrides `json:"overrides,omitempty"`
}

// GetThemeHandler returns the tenant's effective theme and the stored diff
func GetThemeHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePersistence(deps, w) {
			return
		}
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		resolved, err := deps.ThemeService.Resolve(r.Context(), t)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		overrides, err := deps.ThemeService.Overrides(r.Context(), t)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: ThemeResponse{
			Theme:     resolved,
			Overrides: overrides,
		}})
	}
}

// PutThemeHandler accepts a full modified theme configuration, stores the
// minimal diff against the tenant base, and returns the stored overrides.
func PutThemeHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePersistence(deps, w) {
			return
		}
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		var modified models.ThemeConfig
		if err := json.NewDecoder(r.Body).Decode(&modified); err != nil {
			respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}

		diff, err := deps.ThemeService.SaveModified(r.Context(), t, modified)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: ThemeResponse{
			Theme:     modified,
			Overrides: diff,
		}})
	}
}

// DeleteThemeHandler clears any stored overrides for the tenant
func DeleteThemeHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePersistence(deps, w) {
			return
		}
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		if err := deps.ThemeService.Clear(r.Context(), t); err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		utils.WriteNoContent(w)
	}
}

// requirePersistence rejects the request when no database is configured
func requirePersistence(deps *app.Dependencies, w http.ResponseWriter) bool {
	if !deps.PersistenceEnabled() {
		respondError(w, http.StatusServiceUnavailable, "persistence_disabled",
			"page and theme storage is not configured")
		return false
	}
	return true
}
