package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tripforge/backend/app"
	"github.com/tripforge/backend/config"
	"github.com/tripforge/backend/internal/observability"
	"github.com/tripforge/backend/internal/providers"
	"github.com/tripforge/backend/internal/tenant"
	"github.com/tripforge/backend/middleware"
	"github.com/tripforge/backend/models"
	searchsvc "github.com/tripforge/backend/services/search"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	registry, err := tenant.New([]models.Tenant{
		{
			ID:               "corp",
			Name:             "Corp Travel",
			EnabledVerticals: []models.Vertical{models.VerticalFlights, models.VerticalStays},
			FlightDefaults:   models.FlightDefaults{CabinClass: "economy", SortOrder: models.SortPriceAsc},
			StayDefaults:     models.StayDefaults{SortOrder: models.SortPriceAsc, Rooms: 1, Guests: 2},
		},
	})
	require.NoError(t, err)

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	provider := providers.NewStubProvider()

	deps := &app.Dependencies{
		Config: &config.Config{
			Environment: "test",
			Observability: config.ObservabilityConfig{
				LogLevel:       "info",
				LogFormat:      "json",
				MetricsEnabled: true,
			},
		},
		Logger:           logger,
		Metrics:          metrics,
		Registry:         registry,
		Provider:         provider,
		SearchService:    searchsvc.NewService(provider, metrics, logger),
		TenantMiddleware: middleware.NewTenantMiddleware(registry, logger),
	}
	return SetupRoutes(deps)
}

func TestRoutes(t *testing.T) {
	server := testServer(t)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		return w
	}

	t.Run("health endpoints", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/healthz", "").Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/readyz", "").Code)
	})

	t.Run("metrics endpoint is exposed", func(t *testing.T) {
		w := do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("tenant list", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/tenants", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "corp")
	})

	t.Run("tenant-scoped search", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/tenants/corp/search/flights",
			`{"origin":"JFK","destination":"LAX","depart_date":"2026-10-01"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		data := response["data"].(map[string]interface{})
		assert.NotEmpty(t, data["offers"])
	})

	t.Run("unknown tenant yields 404", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/tenants/ghost/search/flights",
			`{"origin":"JFK","destination":"LAX","depart_date":"2026-10-01"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("theme endpoints answer 503 without persistence", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/tenants/corp/theme/", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("unmatched route yields json 404", func(t *testing.T) {
		w := do(http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"endpoint not found"}`, w.Body.String())
	})
}
