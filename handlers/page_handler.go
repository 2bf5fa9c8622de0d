package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripforge/backend/app"
	"github.com/tripforge/backend/middleware"
	"github.com/tripforge/backend/models"
	"github.com/tripforge/backend/utils"
)

// SavePageRequest is the request body for PUT /pages/{slug}
type SavePageRequest struct {
	Title     string                 `json:"title,omitempty"`
	Tree      models.ComponentTree   `json:"tree" validate:"required"`
	Overrides *models.ThemeOverrides `json:"overrides,omitempty"`
}

// ListPagesHandler lists the tenant's stored pages
func ListPagesHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePersistence(deps, w) {
			return
		}
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		pages, err := deps.PageService.List(r.Context(), t)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: pages})
	}
}

// GetPageHandler returns a stored page with its resolved theme
func GetPageHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePersistence(deps, w) {
			return
		}
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		resolved, err := deps.PageService.Get(r.Context(), t, chi.URLParam(r, "slug"))
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: resolved})
	}
}

// PutPageHandler stores a page composition tree under the given slug
func PutPageHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePersistence(deps, w) {
			return
		}
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		slug := chi.URLParam(r, "slug")
		if err := utils.ValidateSlug(slug); err != nil {
			respondError(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}

		var req SavePageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}
		if err := utils.ValidateStruct(req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		page, err := deps.PageService.Save(r.Context(), t, slug, req.Title, req.Tree, req.Overrides)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: page})
	}
}

// DeletePageHandler removes a stored page
func DeletePageHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePersistence(deps, w) {
			return
		}
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		if err := deps.PageService.Delete(r.Context(), t, chi.URLParam(r, "slug")); err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		utils.WriteNoContent(w)
	}
}
