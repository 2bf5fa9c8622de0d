// Package policy evaluates search offers against a tenant's business rules,
// producing structured compliance, violation, and promotion metadata.
//
// Every evaluation is pure: rules that do not apply to an offer (missing
// carrier code, missing rating, no configured threshold) are silently
// skipped rather than treated as failures.
package policy

import (
	"strconv"
	"strings"

	"github.com/tripforge/backend/models"
)

// Default violation messages, used when a rule carries no display message.
const (
	defaultPreferredMsg  = "This airline is not in your company's preferred list"
	defaultExcludedMsg   = "This airline is excluded by your travel policy"
	defaultBudgetMsg     = "Budget airlines are excluded by your travel policy"
	defaultCashbackMsg   = "Cashback promotion applies to this airline"
	defaultRoleCabinMsg  = "Cabin selection is restricted for your role"
	defaultStarRatingMsg = "This property is below your company's minimum star rating"
	defaultPriceCapMsg   = "Nightly rate exceeds your company's price cap"
)

// EvaluateFlight evaluates one flight offer against the tenant's rules.
// All rules are evaluated independently on every call; order between them
// never matters. An offer with no carrier code matches no airline list.
func EvaluateFlight(offer models.FlightOffer, tenant *models.Tenant) models.PolicyEvaluation {
	eval := models.PolicyEvaluation{Violations: []models.Violation{}}
	carrier := offer.Carrier
	defaults := tenant.FlightDefaults

	// Preferred airline: a non-empty preferred list always produces the
	// preferred flag; a miss only becomes a warning when a rule asks for it.
	if len(defaults.PreferredAirlines) > 0 {
		preferred := containsCode(defaults.PreferredAirlines, carrier)
		eval.Preferred = &preferred
		if !preferred {
			if rule, ok := tenant.Rule(models.RulePreferredAirline); ok {
				eval.Violations = append(eval.Violations, models.Violation{
					Type:     models.RulePreferredAirline,
					Message:  ruleMessage(rule, defaultPreferredMsg),
					Severity: models.SeverityWarning,
				})
			}
		}
	}

	// General excluded airline list.
	if containsCode(defaults.ExcludedAirlines, carrier) {
		msg := defaultExcludedMsg
		if rule, ok := tenant.Rule(models.RuleExcludedAirline); ok {
			msg = ruleMessage(rule, defaultExcludedMsg)
		}
		eval.Violations = append(eval.Violations, models.Violation{
			Type:     models.RuleExcludedAirline,
			Message:  msg,
			Severity: models.SeverityError,
		})
	}

	// Budget airline hard exclusion: applies regardless of other settings.
	if rule, ok := tenant.Rule(models.RuleBudgetAirlineExcluded); ok {
		if containsCode(splitCodes(rule.Value), carrier) {
			eval.Violations = append(eval.Violations, models.Violation{
				Type:     models.RuleBudgetAirlineExcluded,
				Message:  ruleMessage(rule, defaultBudgetMsg),
				Severity: models.SeverityError,
			})
		}
	}

	// Cashback promotion, gated on the tenant showing promotions at all.
	if rule, ok := tenant.Rule(models.RuleCashbackPromotion); ok && tenant.UX.ShowPromotions {
		if containsCode(rule.ApplicableAirlines, carrier) {
			eval.Promotions = append(eval.Promotions, models.Promotion{
				Type:    models.RuleCashbackPromotion,
				Message: ruleMessage(rule, defaultCashbackMsg),
				Value:   rule.CashbackPercent,
			})
		}
	}

	// Role-based cabin restriction, gated on compliance display.
	if rule, ok := tenant.Rule(models.RuleRoleBasedCabin); ok && tenant.UX.ShowPolicyCompliance {
		if tenant.UX.DefaultUserRole != rule.RequiredRole {
			eval.Violations = append(eval.Violations, models.Violation{
				Type:     models.RuleRoleBasedCabin,
				Message:  ruleMessage(rule, defaultRoleCabinMsg),
				Severity: models.SeverityInfo,
			})
		}
	}

	eval.Compliant = eval.ErrorCount() == 0
	return eval
}

// EvaluateStay evaluates one stay offer against the tenant's rules.
// Both checks only ever emit warnings, so in practice a stay evaluation is
// always compliant; the error-count rule is applied anyway for uniformity.
func EvaluateStay(offer models.StayOffer, tenant *models.Tenant) models.PolicyEvaluation {
	eval := models.PolicyEvaluation{Violations: []models.Violation{}}
	defaults := tenant.StayDefaults

	// Minimum star rating: only when both threshold and rating are present.
	if defaults.MinStarRating != nil && offer.Rating != nil && *offer.Rating < *defaults.MinStarRating {
		msg := defaultStarRatingMsg
		if rule, ok := tenant.Rule(models.RuleStarRatingMin); ok {
			msg = ruleMessage(rule, defaultStarRatingMsg)
		}
		eval.Violations = append(eval.Violations, models.Violation{
			Type:     models.RuleStarRatingMin,
			Message:  msg,
			Severity: models.SeverityWarning,
		})
	}

	// Max nightly price cap, gated on compliance display and the presence
	// of at least one rate. The first rate is the headline rate.
	if defaults.MaxNightlyPrice != nil && len(offer.Rates) > 0 && tenant.UX.ShowPolicyCompliance {
		if ParseAmount(offer.Rates[0].Amount) > *defaults.MaxNightlyPrice {
			msg := defaultPriceCapMsg
			if rule, ok := tenant.Rule(models.RulePriceCap); ok {
				msg = ruleMessage(rule, defaultPriceCapMsg)
			}
			eval.Violations = append(eval.Violations, models.Violation{
				Type:     models.RulePriceCap,
				Message:  msg,
				Severity: models.SeverityWarning,
			})
		}
	}

	eval.Compliant = eval.ErrorCount() == 0
	return eval
}

// ParseAmount parses a decimal string amount for comparison purposes.
// Parse failures fall back to zero so sorting and cap checks stay total.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ruleMessage returns the rule's display message or the fallback
func ruleMessage(rule *models.PolicyRule, fallback string) string {
	if rule != nil && rule.Message != "" {
		return rule.Message
	}
	return fallback
}

// splitCodes parses a comma-separated airline code list, trimming whitespace
// and dropping empty entries.
func splitCodes(value string) []string {
	parts := strings.Split(value, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.TrimSpace(p); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// containsCode reports list membership; an empty carrier code never matches.
func containsCode(codes []string, code string) bool {
	if code == "" {
		return false
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
