package models

// Money carries a decimal string amount plus an ISO currency code.
// Amounts are kept as strings end to end; comparison for sorting parses
// them numerically and falls back to zero on unparseable input.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// FlightOffer is the canonical flight offer shape consumed by policy
// evaluation and annotation. Provider payloads are normalized into this
// shape before any rule runs; a missing carrier code is represented as "".
type FlightOffer struct {
	ID              string `json:"id"`
	Carrier         string `json:"carrier"`
	CarrierName     string `json:"carrier_name,omitempty"`
	Price           Money  `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
	Cabin           string `json:"cabin,omitempty"`
	Stops           int    `json:"stops"`
}

// StayOffer is the canonical stay (hotel) offer shape. Rating is nil when
// the provider did not report one; Rates holds nightly rates in provider
// order with the first rate treated as the headline rate.
type StayOffer struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
	Rates  []Money  `json:"rates,omitempty"`
}
