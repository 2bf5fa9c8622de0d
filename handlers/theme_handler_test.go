package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeHandlers_PersistenceDisabled(t *testing.T) {
	deps := testDeps(t)

	endpoints := []struct {
		name    string
		method  string
		body    string
		handler http.HandlerFunc
	}{
		{"get theme", http.MethodGet, "", GetThemeHandler(deps)},
		{"put theme", http.MethodPut, `{"primaryColor":"#d93025"}`, PutThemeHandler(deps)},
		{"delete theme", http.MethodDelete, "", DeleteThemeHandler(deps)},
		{"list pages", http.MethodGet, "", ListPagesHandler(deps)},
		{"get page", http.MethodGet, "", GetPageHandler(deps)},
		{"put page", http.MethodPut, `{}`, PutPageHandler(deps)},
		{"delete page", http.MethodDelete, "", DeletePageHandler(deps)},
	}

	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			req := httptest.NewRequest(ep.method, "/x", strings.NewReader(ep.body))
			req = withTenant(deps, t, req, "corp")
			w := httptest.NewRecorder()

			ep.handler(w, req)

			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			assert.Contains(t, w.Body.String(), "persistence_disabled")
		})
	}
}
