// Package providers defines the seam to upstream travel-search suppliers.
// Payload types mirror the provider wire shapes; normalization into the
// canonical offer model happens downstream, never inside policy code.
package providers

import "context"

// FlightQuery describes a flight search forwarded to a provider
type FlightQuery struct {
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
	Passengers  int
	CabinClass  string
}

// StayQuery describes a stay search forwarded to a provider
type StayQuery struct {
	Location string
	CheckIn  string
	CheckOut string
	Rooms    int
	Guests   int
}

// FlightPayload is the provider-shaped flight offer record
type FlightPayload struct {
	OfferID       string
	OwnerCode     string
	OwnerName     string
	TotalAmount   string
	TotalCurrency string
	Duration      string // ISO 8601 duration, e.g. PT5H30M
	CabinClass    string
	SegmentCount  int
}

// RatePayload is one nightly rate as reported by a provider
type RatePayload struct {
	Amount   string
	Currency string
}

// StayPayload is the provider-shaped stay (hotel) offer record
type StayPayload struct {
	PropertyID   string
	Name         string
	StarRating   *float64
	NightlyRates []RatePayload
}

// SearchProvider is implemented by upstream supplier adapters
type SearchProvider interface {
	SearchFlights(ctx context.Context, q FlightQuery) ([]FlightPayload, error)
	SearchStays(ctx context.Context, q StayQuery) ([]StayPayload, error)
	Name() string
}
