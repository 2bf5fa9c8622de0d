package models

// Vertical represents a product line a tenant may enable
type Vertical string

const (
	VerticalFlights Vertical = "flights"
	VerticalStays   Vertical = "stays"
)

// SortOrder controls how search results are ordered for a tenant
type SortOrder string

const (
	SortPriceAsc    SortOrder = "price_asc"
	SortPriceDesc   SortOrder = "price_desc"
	SortDurationAsc SortOrder = "duration_asc"
	SortRatingDesc  SortOrder = "rating_desc"
)

// Tenant represents a branded product configuration in the multi-tenant system.
// Tenant records are constructed once at startup and never mutated afterwards.
type Tenant struct {
	ID               string         `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	EnabledVerticals []Vertical     `json:"enabled_verticals" yaml:"enabled_verticals"`
	FlightDefaults   FlightDefaults `json:"flight_defaults" yaml:"flight_defaults"`
	StayDefaults     StayDefaults   `json:"stay_defaults" yaml:"stay_defaults"`
	Policies         []PolicyRule   `json:"policies,omitempty" yaml:"policies"`
	Theme            ThemeConfig    `json:"theme" yaml:"theme"`
	UX               UXConfig       `json:"ux" yaml:"ux"`
}

// FlightDefaults holds tenant-level flight search defaults
type FlightDefaults struct {
	CabinClass        string    `json:"cabin_class" yaml:"cabin_class"`
	SortOrder         SortOrder `json:"sort_order" yaml:"sort_order"`
	MaxStops          *int      `json:"max_stops,omitempty" yaml:"max_stops"`
	MaxResults        *int      `json:"max_results,omitempty" yaml:"max_results"`
	PreferredAirlines []string  `json:"preferred_airlines,omitempty" yaml:"preferred_airlines"`
	ExcludedAirlines  []string  `json:"excluded_airlines,omitempty" yaml:"excluded_airlines"`
}

// StayDefaults holds tenant-level stay (hotel) search defaults
type StayDefaults struct {
	SortOrder       SortOrder `json:"sort_order" yaml:"sort_order"`
	MinStarRating   *float64  `json:"min_star_rating,omitempty" yaml:"min_star_rating"`
	MaxNightlyPrice *float64  `json:"max_nightly_price,omitempty" yaml:"max_nightly_price"`
	Rooms           int       `json:"rooms" yaml:"rooms"`
	Guests          int       `json:"guests" yaml:"guests"`
}

// UXConfig holds presentation hints that gate parts of policy evaluation
type UXConfig struct {
	ShowPromotions       bool   `json:"show_promotions" yaml:"show_promotions"`
	ShowPolicyCompliance bool   `json:"show_policy_compliance" yaml:"show_policy_compliance"`
	DefaultUserRole      string `json:"default_user_role,omitempty" yaml:"default_user_role"`
}

// VerticalEnabled reports whether the tenant has the given vertical enabled
func (t *Tenant) VerticalEnabled(v Vertical) bool {
	for _, enabled := range t.EnabledVerticals {
		if enabled == v {
			return true
		}
	}
	return false
}

// Rule returns the first policy rule of the given kind, if any.
// First match wins when multiple rules of the same kind are configured.
func (t *Tenant) Rule(kind RuleKind) (*PolicyRule, bool) {
	for i := range t.Policies {
		if t.Policies[i].Kind == kind {
			return &t.Policies[i], true
		}
	}
	return nil, false
}
