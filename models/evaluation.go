package models

// Severity classifies how strongly a policy violation counts against an offer
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Violation is produced when an offer fails, or partially fails, a policy rule
type Violation struct {
	Type     RuleKind `json:"type"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Promotion is produced when an offer qualifies for a tenant promotion
type Promotion struct {
	Type    RuleKind `json:"type"`
	Message string   `json:"message"`
	Value   float64  `json:"value"`
}

// PolicyEvaluation is the result of evaluating one offer against a tenant's
// policy rules. Compliant is false exactly when at least one violation has
// error severity; lower severities never flip compliance. Promotions is nil,
// not empty, when no promotion fired.
type PolicyEvaluation struct {
	Compliant  bool        `json:"compliant"`
	Violations []Violation `json:"violations"`
	Preferred  *bool       `json:"preferred,omitempty"`
	Promotions []Promotion `json:"promotions,omitempty"`
}

// ErrorCount returns the number of error-severity violations
func (e *PolicyEvaluation) ErrorCount() int {
	n := 0
	for _, v := range e.Violations {
		if v.Severity == SeverityError {
			n++
		}
	}
	return n
}
