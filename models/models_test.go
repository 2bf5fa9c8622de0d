package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenant_VerticalEnabled(t *testing.T) {
	tenant := Tenant{EnabledVerticals: []Vertical{VerticalFlights}}

	assert.True(t, tenant.VerticalEnabled(VerticalFlights))
	assert.False(t, tenant.VerticalEnabled(VerticalStays))
}

func TestTenant_Rule(t *testing.T) {
	tenant := Tenant{
		Policies: []PolicyRule{
			{Kind: RulePriceCap, Value: "200"},
			{Kind: RulePreferredAirline, Message: "first"},
			{Kind: RulePreferredAirline, Message: "second"},
		},
	}

	t.Run("first match wins", func(t *testing.T) {
		rule, ok := tenant.Rule(RulePreferredAirline)
		require.True(t, ok)
		assert.Equal(t, "first", rule.Message)
	})

	t.Run("absent kind", func(t *testing.T) {
		rule, ok := tenant.Rule(RuleCashbackPromotion)
		assert.False(t, ok)
		assert.Nil(t, rule)
	})
}

func TestPolicyEvaluation_ErrorCount(t *testing.T) {
	eval := PolicyEvaluation{
		Violations: []Violation{
			{Severity: SeverityInfo},
			{Severity: SeverityWarning},
			{Severity: SeverityError},
			{Severity: SeverityError},
		},
	}
	assert.Equal(t, 2, eval.ErrorCount())
}

func TestPolicyEvaluation_JSONShape(t *testing.T) {
	t.Run("optional fields omitted when empty", func(t *testing.T) {
		eval := PolicyEvaluation{Compliant: true, Violations: []Violation{}}
		data, err := json.Marshal(eval)
		require.NoError(t, err)

		assert.NotContains(t, string(data), "preferred")
		assert.NotContains(t, string(data), "promotions")
		assert.Contains(t, string(data), `"violations":[]`)
	})

	t.Run("preferred false is still emitted", func(t *testing.T) {
		preferred := false
		eval := PolicyEvaluation{Compliant: true, Violations: []Violation{}, Preferred: &preferred}
		data, err := json.Marshal(eval)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"preferred":false`)
	})
}

func TestComponentTree_Validate(t *testing.T) {
	t.Run("valid tree", func(t *testing.T) {
		tree := ComponentTree{
			RootNodeID: {Type: "Container", IsCanvas: true, Nodes: []string{"hero", "footer"}},
			"hero":     {Type: "Hero", Parent: RootNodeID},
			"footer":   {Type: "Footer", Parent: RootNodeID},
		}
		assert.NoError(t, tree.Validate())
	})

	t.Run("empty tree", func(t *testing.T) {
		assert.Error(t, ComponentTree{}.Validate())
	})

	t.Run("missing parent reference", func(t *testing.T) {
		tree := ComponentTree{
			RootNodeID: {Type: "Container", IsCanvas: true},
			"orphan":   {Type: "Text", Parent: "ghost"},
		}
		err := tree.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing parent")
	})

	t.Run("missing child reference", func(t *testing.T) {
		tree := ComponentTree{
			RootNodeID: {Type: "Container", IsCanvas: true, Nodes: []string{"ghost"}},
		}
		err := tree.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing child")
	})

	t.Run("child with inconsistent parent pointer", func(t *testing.T) {
		tree := ComponentTree{
			RootNodeID: {Type: "Container", IsCanvas: true, Nodes: []string{"hero"}},
			"other":    {Type: "Section", Parent: RootNodeID, IsCanvas: true},
			"hero":     {Type: "Hero", Parent: "other"},
		}
		err := tree.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "points back")
	})

	t.Run("children on a non-canvas node", func(t *testing.T) {
		tree := ComponentTree{
			RootNodeID: {Type: "Container", IsCanvas: true, Nodes: []string{"text"}},
			"text":     {Type: "Text", Parent: RootNodeID, Nodes: []string{"nested"}},
			"nested":   {Type: "Text", Parent: "text"},
		}
		err := tree.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a canvas")
	})

	t.Run("two roots", func(t *testing.T) {
		tree := ComponentTree{
			RootNodeID: {Type: "Container", IsCanvas: true},
			"second":   {Type: "Container", IsCanvas: true},
		}
		err := tree.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one root")
	})
}

func TestThemeOverrides_IsZero(t *testing.T) {
	assert.True(t, ThemeOverrides{}.IsZero())
	assert.False(t, ThemeOverrides{PrimaryColor: "#fff"}.IsZero())
	assert.False(t, ThemeOverrides{Colors: TokenGroup{"background": "#000"}}.IsZero())
}

func TestNewPage(t *testing.T) {
	tree := ComponentTree{RootNodeID: {Type: "Container", IsCanvas: true}}
	page := NewPage("corp", "landing", tree)

	assert.Equal(t, "corp", page.TenantID)
	assert.Equal(t, "landing", page.Slug)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", page.ID.String())
	assert.Equal(t, page.CreatedAt, page.UpdatedAt)
}
