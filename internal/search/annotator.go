// Package search annotates provider offers with per-tenant policy metadata
// and applies the tenant's sort, filter, and result-limit defaults.
package search

import (
	"sort"

	"github.com/tripforge/backend/internal/policy"
	"github.com/tripforge/backend/models"
)

// AnnotatedFlight is a flight offer plus its policy evaluation
type AnnotatedFlight struct {
	models.FlightOffer
	Policy models.PolicyEvaluation `json:"policy"`
}

// AnnotatedStay is a stay offer plus its policy evaluation
type AnnotatedStay struct {
	models.StayOffer
	Policy models.PolicyEvaluation `json:"policy"`
}

// AnnotateFlights evaluates every offer against the tenant's rules, sorts
// by the tenant's flight sort order, then truncates to MaxResults when set.
// Truncation happens after sorting so the cheapest (or shortest) offers
// survive regardless of provider order.
func AnnotateFlights(offers []models.FlightOffer, tenant *models.Tenant) []AnnotatedFlight {
	annotated := make([]AnnotatedFlight, 0, len(offers))
	for _, offer := range offers {
		annotated = append(annotated, AnnotatedFlight{
			FlightOffer: offer,
			Policy:      policy.EvaluateFlight(offer, tenant),
		})
	}

	sortFlights(annotated, tenant.FlightDefaults.SortOrder)

	if max := tenant.FlightDefaults.MaxResults; max != nil && len(annotated) > *max {
		annotated = annotated[:*max]
	}
	return annotated
}

// AnnotateStays hard-filters offers below the tenant's minimum star rating
// before annotation, then evaluates and sorts the survivors. The policy
// engine separately warns on the same threshold; both enforcement paths are
// kept deliberately (hard filter for the result list, soft warning for
// per-offer display).
func AnnotateStays(offers []models.StayOffer, tenant *models.Tenant) []AnnotatedStay {
	filtered := offers
	if min := tenant.StayDefaults.MinStarRating; min != nil {
		filtered = make([]models.StayOffer, 0, len(offers))
		for _, offer := range offers {
			if offer.Rating != nil && *offer.Rating < *min {
				continue
			}
			filtered = append(filtered, offer)
		}
	}

	annotated := make([]AnnotatedStay, 0, len(filtered))
	for _, offer := range filtered {
		annotated = append(annotated, AnnotatedStay{
			StayOffer: offer,
			Policy:    policy.EvaluateStay(offer, tenant),
		})
	}

	sortStays(annotated, tenant.StayDefaults.SortOrder)
	return annotated
}

// sortFlights applies the tenant sort order with a stable sort, so offers
// that compare equal keep their provider order.
func sortFlights(offers []AnnotatedFlight, order models.SortOrder) {
	switch order {
	case models.SortPriceAsc:
		sort.SliceStable(offers, func(i, j int) bool {
			return policy.ParseAmount(offers[i].Price.Amount) < policy.ParseAmount(offers[j].Price.Amount)
		})
	case models.SortPriceDesc:
		sort.SliceStable(offers, func(i, j int) bool {
			return policy.ParseAmount(offers[i].Price.Amount) > policy.ParseAmount(offers[j].Price.Amount)
		})
	case models.SortDurationAsc:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DurationMinutes < offers[j].DurationMinutes
		})
	}
}

// sortStays applies the tenant sort order over the headline (first) rate or
// the star rating. Offers without a rate or rating compare as zero.
func sortStays(offers []AnnotatedStay, order models.SortOrder) {
	headline := func(o AnnotatedStay) float64 {
		if len(o.Rates) == 0 {
			return 0
		}
		return policy.ParseAmount(o.Rates[0].Amount)
	}
	rating := func(o AnnotatedStay) float64 {
		if o.Rating == nil {
			return 0
		}
		return *o.Rating
	}

	switch order {
	case models.SortPriceAsc:
		sort.SliceStable(offers, func(i, j int) bool { return headline(offers[i]) < headline(offers[j]) })
	case models.SortPriceDesc:
		sort.SliceStable(offers, func(i, j int) bool { return headline(offers[i]) > headline(offers[j]) })
	case models.SortRatingDesc:
		sort.SliceStable(offers, func(i, j int) bool { return rating(offers[i]) > rating(offers[j]) })
	}
}
