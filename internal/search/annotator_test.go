package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripforge/backend/models"
)

func flight(id, carrier, amount string, duration int) models.FlightOffer {
	return models.FlightOffer{
		ID:              id,
		Carrier:         carrier,
		Price:           models.Money{Amount: amount, Currency: "USD"},
		DurationMinutes: duration,
	}
}

func stay(id string, rating *float64, amounts ...string) models.StayOffer {
	rates := make([]models.Money, 0, len(amounts))
	for _, a := range amounts {
		rates = append(rates, models.Money{Amount: a, Currency: "USD"})
	}
	return models.StayOffer{ID: id, Rating: rating, Rates: rates}
}

func ratingPtr(v float64) *float64 { return &v }

func TestAnnotateFlights_SortOrders(t *testing.T) {
	offers := []models.FlightOffer{
		flight("mid", "AA", "412.50", 330),
		flight("cheap", "NK", "129.99", 465),
		flight("fast", "DL", "445.10", 310),
	}

	ids := func(annotated []AnnotatedFlight) []string {
		out := make([]string, len(annotated))
		for i, a := range annotated {
			out[i] = a.ID
		}
		return out
	}

	t.Run("price ascending", func(t *testing.T) {
		tenant := &models.Tenant{ID: "t", FlightDefaults: models.FlightDefaults{SortOrder: models.SortPriceAsc}}
		assert.Equal(t, []string{"cheap", "mid", "fast"}, ids(AnnotateFlights(offers, tenant)))
	})

	t.Run("price descending", func(t *testing.T) {
		tenant := &models.Tenant{ID: "t", FlightDefaults: models.FlightDefaults{SortOrder: models.SortPriceDesc}}
		assert.Equal(t, []string{"fast", "mid", "cheap"}, ids(AnnotateFlights(offers, tenant)))
	})

	t.Run("duration ascending", func(t *testing.T) {
		tenant := &models.Tenant{ID: "t", FlightDefaults: models.FlightDefaults{SortOrder: models.SortDurationAsc}}
		assert.Equal(t, []string{"fast", "mid", "cheap"}, ids(AnnotateFlights(offers, tenant)))
	})

	t.Run("unknown order keeps provider order", func(t *testing.T) {
		tenant := &models.Tenant{ID: "t"}
		assert.Equal(t, []string{"mid", "cheap", "fast"}, ids(AnnotateFlights(offers, tenant)))
	})
}

func TestAnnotateFlights_StableOnEqualKeys(t *testing.T) {
	offers := []models.FlightOffer{
		flight("first", "AA", "200.00", 100),
		flight("second", "UA", "200.00", 100),
		flight("third", "DL", "200.00", 100),
	}
	tenant := &models.Tenant{ID: "t", FlightDefaults: models.FlightDefaults{SortOrder: models.SortPriceAsc}}

	annotated := AnnotateFlights(offers, tenant)
	require.Len(t, annotated, 3)
	assert.Equal(t, "first", annotated[0].ID)
	assert.Equal(t, "second", annotated[1].ID)
	assert.Equal(t, "third", annotated[2].ID)
}

func TestAnnotateFlights_TruncatesAfterSort(t *testing.T) {
	offers := []models.FlightOffer{
		flight("expensive", "AA", "900.00", 330),
		flight("cheap", "UA", "100.00", 400),
		flight("mid", "DL", "500.00", 310),
	}
	max := 2
	tenant := &models.Tenant{ID: "t", FlightDefaults: models.FlightDefaults{
		SortOrder:  models.SortPriceAsc,
		MaxResults: &max,
	}}

	annotated := AnnotateFlights(offers, tenant)
	require.Len(t, annotated, 2)
	// the cheapest offers survive regardless of provider order
	assert.Equal(t, "cheap", annotated[0].ID)
	assert.Equal(t, "mid", annotated[1].ID)
}

func TestAnnotateFlights_AttachesPolicy(t *testing.T) {
	tenant := &models.Tenant{
		ID: "t",
		FlightDefaults: models.FlightDefaults{
			SortOrder:        models.SortPriceAsc,
			ExcludedAirlines: []string{"WN"},
		},
	}

	annotated := AnnotateFlights([]models.FlightOffer{
		flight("ok", "AA", "100.00", 100),
		flight("banned", "WN", "200.00", 100),
	}, tenant)

	require.Len(t, annotated, 2)
	assert.True(t, annotated[0].Policy.Compliant)
	assert.False(t, annotated[1].Policy.Compliant)
}

func TestAnnotateStays_HardFilterBelowMinRating(t *testing.T) {
	min := 4.0
	tenant := &models.Tenant{
		ID: "t",
		StayDefaults: models.StayDefaults{
			SortOrder:     models.SortPriceAsc,
			MinStarRating: &min,
		},
	}

	annotated := AnnotateStays([]models.StayOffer{
		stay("five", ratingPtr(5), "320.00"),
		stay("three", ratingPtr(3), "98.50"),
		stay("four", ratingPtr(4), "189.00"),
		stay("unrated", nil, "240.00"),
	}, tenant)

	ids := make([]string, len(annotated))
	for i, a := range annotated {
		ids[i] = a.ID
	}
	// the 3-star property is dropped; the unrated one survives the filter
	assert.ElementsMatch(t, []string{"five", "four", "unrated"}, ids)
}

func TestAnnotateStays_NoFilterWithoutThreshold(t *testing.T) {
	tenant := &models.Tenant{ID: "t", StayDefaults: models.StayDefaults{SortOrder: models.SortPriceAsc}}
	annotated := AnnotateStays([]models.StayOffer{
		stay("one", ratingPtr(1), "50.00"),
		stay("five", ratingPtr(5), "320.00"),
	}, tenant)
	assert.Len(t, annotated, 2)
}

func TestAnnotateStays_SortOrders(t *testing.T) {
	offers := []models.StayOffer{
		stay("mid", ratingPtr(4), "189.00"),
		stay("cheap", ratingPtr(3), "98.50"),
		stay("pricey", ratingPtr(5), "320.00"),
	}

	ids := func(annotated []AnnotatedStay) []string {
		out := make([]string, len(annotated))
		for i, a := range annotated {
			out[i] = a.ID
		}
		return out
	}

	t.Run("price ascending", func(t *testing.T) {
		tenant := &models.Tenant{ID: "t", StayDefaults: models.StayDefaults{SortOrder: models.SortPriceAsc}}
		assert.Equal(t, []string{"cheap", "mid", "pricey"}, ids(AnnotateStays(offers, tenant)))
	})

	t.Run("rating descending", func(t *testing.T) {
		tenant := &models.Tenant{ID: "t", StayDefaults: models.StayDefaults{SortOrder: models.SortRatingDesc}}
		assert.Equal(t, []string{"pricey", "mid", "cheap"}, ids(AnnotateStays(offers, tenant)))
	})

	t.Run("missing rating sorts as zero", func(t *testing.T) {
		tenant := &models.Tenant{ID: "t", StayDefaults: models.StayDefaults{SortOrder: models.SortRatingDesc}}
		withUnrated := append([]models.StayOffer{stay("unrated", nil, "240.00")}, offers...)
		got := ids(AnnotateStays(withUnrated, tenant))
		assert.Equal(t, "unrated", got[len(got)-1])
	})
}

func TestAnnotateStays_SoftWarningStillEmittedForSurvivors(t *testing.T) {
	// A property exactly at the threshold passes both the hard filter and
	// the policy check; one below the threshold never reaches annotation.
	min := 4.0
	tenant := &models.Tenant{
		ID:           "t",
		StayDefaults: models.StayDefaults{SortOrder: models.SortPriceAsc, MinStarRating: &min},
	}

	annotated := AnnotateStays([]models.StayOffer{
		stay("at", ratingPtr(4), "189.00"),
		stay("below", ratingPtr(3), "98.50"),
	}, tenant)

	require.Len(t, annotated, 1)
	assert.Equal(t, "at", annotated[0].ID)
	assert.Empty(t, annotated[0].Policy.Violations)
}

func TestAnnotateStays_UnratedStillWarnsOnPriceCap(t *testing.T) {
	min := 4.0
	cap := 200.0
	tenant := &models.Tenant{
		ID: "t",
		StayDefaults: models.StayDefaults{
			SortOrder:       models.SortPriceAsc,
			MinStarRating:   &min,
			MaxNightlyPrice: &cap,
		},
		UX: models.UXConfig{ShowPolicyCompliance: true},
	}

	annotated := AnnotateStays([]models.StayOffer{
		stay("unrated", nil, "240.00"),
	}, tenant)

	require.Len(t, annotated, 1)
	require.Len(t, annotated[0].Policy.Violations, 1)
	assert.Equal(t, models.RulePriceCap, annotated[0].Policy.Violations[0].Type)
}
