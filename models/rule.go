package models

// RuleKind identifies the kind of a policy rule
type RuleKind string

const (
	RulePreferredAirline      RuleKind = "preferred_airline"
	RuleExcludedAirline       RuleKind = "excluded_airline"
	RulePriceCap              RuleKind = "price_cap"
	RuleCabinRestriction      RuleKind = "cabin_restriction"
	RuleStarRatingMin         RuleKind = "star_rating_min"
	RuleCashbackPromotion     RuleKind = "cashback_promotion"
	RuleBudgetAirlineExcluded RuleKind = "budget_airline_excluded"
	RuleRoleBasedCabin        RuleKind = "role_based_cabin"
)

// PolicyRule is a tenant-declared business constraint applied to search offers.
// Kind selects which of the optional fields are meaningful; fields that do not
// apply to a kind are left at their zero value.
type PolicyRule struct {
	Kind    RuleKind `json:"kind" yaml:"kind"`
	Value   string   `json:"value,omitempty" yaml:"value"`
	Message string   `json:"message,omitempty" yaml:"message"`

	// cashback_promotion only
	ApplicableAirlines []string `json:"applicable_airlines,omitempty" yaml:"applicable_airlines"`
	CashbackPercent    float64  `json:"cashback_percent,omitempty" yaml:"cashback_percent"`

	// role_based_cabin only
	RequiredRole string `json:"required_role,omitempty" yaml:"required_role"`
}
