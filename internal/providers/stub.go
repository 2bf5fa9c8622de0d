package providers

import "context"

// StubProvider returns a fixed, deterministic result set. It stands in for
// a real GDS/OTA client during development and in tests; swapping in a live
// adapter only requires implementing SearchProvider.
type StubProvider struct{}

// NewStubProvider creates the stub supplier adapter
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

// Name returns the provider identifier
func (p *StubProvider) Name() string {
	return "stub"
}

// SearchFlights returns a fixed set of flight payloads across a mix of
// mainline and budget carriers so every policy path has material to work on.
func (p *StubProvider) SearchFlights(ctx context.Context, q FlightQuery) ([]FlightPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []FlightPayload{
		{
			OfferID:       "fl-001",
			OwnerCode:     "AA",
			OwnerName:     "American Airlines",
			TotalAmount:   "412.50",
			TotalCurrency: "USD",
			Duration:      "PT5H30M",
			CabinClass:    q.CabinClass,
			SegmentCount:  1,
		},
		{
			OfferID:       "fl-002",
			OwnerCode:     "UA",
			OwnerName:     "United Airlines",
			TotalAmount:   "389.00",
			TotalCurrency: "USD",
			Duration:      "PT6H5M",
			CabinClass:    q.CabinClass,
			SegmentCount:  2,
		},
		{
			OfferID:       "fl-003",
			OwnerCode:     "DL",
			OwnerName:     "Delta Air Lines",
			TotalAmount:   "445.10",
			TotalCurrency: "USD",
			Duration:      "PT5H10M",
			CabinClass:    q.CabinClass,
			SegmentCount:  1,
		},
		{
			OfferID:       "fl-004",
			OwnerCode:     "NK",
			OwnerName:     "Spirit Airlines",
			TotalAmount:   "129.99",
			TotalCurrency: "USD",
			Duration:      "PT7H45M",
			CabinClass:    q.CabinClass,
			SegmentCount:  2,
		},
	}, nil
}

// SearchStays returns a fixed set of stay payloads spanning the rating range
func (p *StubProvider) SearchStays(ctx context.Context, q StayQuery) ([]StayPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []StayPayload{
		{
			PropertyID: "st-100",
			Name:       "Grand Meridian Hotel",
			StarRating: ratingPtr(5),
			NightlyRates: []RatePayload{
				{Amount: "320.00", Currency: "USD"},
			},
		},
		{
			PropertyID: "st-101",
			Name:       "Harborview Suites",
			StarRating: ratingPtr(4),
			NightlyRates: []RatePayload{
				{Amount: "189.00", Currency: "USD"},
				{Amount: "172.00", Currency: "USD"},
			},
		},
		{
			PropertyID: "st-102",
			Name:       "City Center Inn",
			StarRating: ratingPtr(3),
			NightlyRates: []RatePayload{
				{Amount: "98.50", Currency: "USD"},
			},
		},
		{
			PropertyID: "st-103",
			Name:       "The Pinnacle Residence",
			StarRating: nil, // unrated property
			NightlyRates: []RatePayload{
				{Amount: "240.00", Currency: "USD"},
			},
		},
	}, nil
}

func ratingPtr(v float64) *float64 {
	return &v
}
