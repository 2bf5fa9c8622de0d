package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tripforge/backend/internal/providers"
	"github.com/tripforge/backend/models"
)

// iso8601Duration matches the provider duration format, e.g. PT5H30M
var iso8601Duration = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?$`)

// NormalizeFlight projects a provider flight payload onto the canonical
// offer shape. Carrier codes are upper-cased; a missing code normalizes to
// "" and will simply match no airline list downstream.
func NormalizeFlight(p providers.FlightPayload) models.FlightOffer {
	stops := p.SegmentCount - 1
	if stops < 0 {
		stops = 0
	}
	return models.FlightOffer{
		ID:          p.OfferID,
		Carrier:     strings.ToUpper(strings.TrimSpace(p.OwnerCode)),
		CarrierName: p.OwnerName,
		Price: models.Money{
			Amount:   p.TotalAmount,
			Currency: p.TotalCurrency,
		},
		DurationMinutes: parseDurationMinutes(p.Duration),
		Cabin:           p.CabinClass,
		Stops:           stops,
	}
}

// NormalizeStay projects a provider stay payload onto the canonical shape
func NormalizeStay(p providers.StayPayload) models.StayOffer {
	rates := make([]models.Money, 0, len(p.NightlyRates))
	for _, r := range p.NightlyRates {
		rates = append(rates, models.Money{Amount: r.Amount, Currency: r.Currency})
	}
	return models.StayOffer{
		ID:     p.PropertyID,
		Name:   p.Name,
		Rating: p.StarRating,
		Rates:  rates,
	}
}

// NormalizeFlights maps a provider result set, preserving provider order
func NormalizeFlights(payloads []providers.FlightPayload) []models.FlightOffer {
	offers := make([]models.FlightOffer, 0, len(payloads))
	for _, p := range payloads {
		offers = append(offers, NormalizeFlight(p))
	}
	return offers
}

// NormalizeStays maps a provider result set, preserving provider order
func NormalizeStays(payloads []providers.StayPayload) []models.StayOffer {
	offers := make([]models.StayOffer, 0, len(payloads))
	for _, p := range payloads {
		offers = append(offers, NormalizeStay(p))
	}
	return offers
}

// parseDurationMinutes converts an ISO 8601 duration into whole minutes.
// Unparseable values fall back to zero, keeping downstream sorting total.
func parseDurationMinutes(s string) int {
	m := iso8601Duration.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	days, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	hours, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	return days*24*60 + hours*60 + minutes
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
