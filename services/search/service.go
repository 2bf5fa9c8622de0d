// Package search orchestrates a tenant search: provider call, normalization
// into canonical offers, policy annotation, and response assembly.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tripforge/backend/internal/observability"
	"github.com/tripforge/backend/internal/providers"
	"github.com/tripforge/backend/internal/search"
	"github.com/tripforge/backend/models"
	"github.com/tripforge/backend/services"
)

// FlightResults is the annotated result set for a flight search
type FlightResults struct {
	Offers          []search.AnnotatedFlight `json:"offers"`
	AppliedDefaults models.FlightDefaults    `json:"applied_defaults"`
	Query           providers.FlightQuery    `json:"query"`
	Provider        string                   `json:"provider"`
}

// StayResults is the annotated result set for a stay search
type StayResults struct {
	Offers          []search.AnnotatedStay `json:"offers"`
	AppliedDefaults models.StayDefaults    `json:"applied_defaults"`
	Query           providers.StayQuery    `json:"query"`
	Provider        string                 `json:"provider"`
}

// Service runs tenant searches against the configured provider
type Service struct {
	provider providers.SearchProvider
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewService creates a search service
func NewService(provider providers.SearchProvider, metrics *observability.Metrics, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// SearchFlights runs a flight search for the tenant: tenant defaults fill
// gaps in the query, the provider result set is normalized and annotated,
// and the applied defaults are echoed back for the presentation layer.
func (s *Service) SearchFlights(ctx context.Context, tenant *models.Tenant, q providers.FlightQuery) (*FlightResults, error) {
	if !tenant.VerticalEnabled(models.VerticalFlights) {
		return nil, services.ErrVerticalDisabled.WithDetail("vertical", string(models.VerticalFlights))
	}

	if q.CabinClass == "" {
		q.CabinClass = tenant.FlightDefaults.CabinClass
	}
	if q.Passengers == 0 {
		q.Passengers = 1
	}

	start := time.Now()
	payloads, err := s.provider.SearchFlights(ctx, q)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeExternal,
			"search provider error", fmt.Errorf("flight search: %w", err))
	}

	offers := search.AnnotateFlights(search.NormalizeFlights(payloads), tenant)
	s.record(tenant.ID, models.VerticalFlights, time.Since(start))
	for _, offer := range offers {
		s.recordViolations(tenant.ID, offer.Policy.Violations)
	}

	s.logger.Info("flight search completed",
		zap.String("tenant_id", tenant.ID),
		zap.String("provider", s.provider.Name()),
		zap.Int("offers", len(offers)))

	return &FlightResults{
		Offers:          offers,
		AppliedDefaults: tenant.FlightDefaults,
		Query:           q,
		Provider:        s.provider.Name(),
	}, nil
}

// SearchStays runs a stay search for the tenant, mirroring SearchFlights
func (s *Service) SearchStays(ctx context.Context, tenant *models.Tenant, q providers.StayQuery) (*StayResults, error) {
	if !tenant.VerticalEnabled(models.VerticalStays) {
		return nil, services.ErrVerticalDisabled.WithDetail("vertical", string(models.VerticalStays))
	}

	if q.Rooms == 0 {
		q.Rooms = tenant.StayDefaults.Rooms
	}
	if q.Guests == 0 {
		q.Guests = tenant.StayDefaults.Guests
	}

	start := time.Now()
	payloads, err := s.provider.SearchStays(ctx, q)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeExternal,
			"search provider error", fmt.Errorf("stay search: %w", err))
	}

	offers := search.AnnotateStays(search.NormalizeStays(payloads), tenant)
	s.record(tenant.ID, models.VerticalStays, time.Since(start))
	for _, offer := range offers {
		s.recordViolations(tenant.ID, offer.Policy.Violations)
	}

	s.logger.Info("stay search completed",
		zap.String("tenant_id", tenant.ID),
		zap.String("provider", s.provider.Name()),
		zap.Int("offers", len(offers)))

	return &StayResults{
		Offers:          offers,
		AppliedDefaults: tenant.StayDefaults,
		Query:           q,
		Provider:        s.provider.Name(),
	}, nil
}

func (s *Service) record(tenantID string, vertical models.Vertical, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.SearchRequests.WithLabelValues(tenantID, string(vertical)).Inc()
	s.metrics.SearchDuration.WithLabelValues(string(vertical)).Observe(elapsed.Seconds())
}

func (s *Service) recordViolations(tenantID string, violations []models.Violation) {
	if s.metrics == nil {
		return
	}
	for _, v := range violations {
		s.metrics.PolicyViolations.WithLabelValues(tenantID, string(v.Type), string(v.Severity)).Inc()
	}
}
