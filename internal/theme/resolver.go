// Package theme implements the override-merge algorithm that layers partial
// theme customizations on top of a tenant's base design tokens, and its
// inverse, which computes the minimal override object reproducing a modified
// configuration from a base one.
package theme

import (
	"reflect"

	"github.com/tripforge/backend/models"
)

// Apply layers overrides onto base and returns the effective configuration.
// A nil override is the identity. Each token group merges flat by key:
// override keys shallow-replace matching base keys, keys absent from the
// override are preserved. Inputs are never mutated and no shape of partial
// override is an error.
func Apply(base models.ThemeConfig, overrides *models.ThemeOverrides) models.ThemeConfig {
	out := models.ThemeConfig{
		PrimaryColor: base.PrimaryColor,
		DesignTokenSet: models.DesignTokenSet{
			Colors:     mergeGroup(base.Colors, nil),
			Typography: mergeGroup(base.Typography, nil),
			Spacing:    mergeGroup(base.Spacing, nil),
			Borders:    mergeGroup(base.Borders, nil),
			Shadows:    mergeGroup(base.Shadows, nil),
		},
	}
	if overrides == nil {
		return out
	}

	if overrides.PrimaryColor != "" {
		out.PrimaryColor = overrides.PrimaryColor
	}
	out.Colors = mergeGroup(base.Colors, overrides.Colors)
	out.Typography = mergeGroup(base.Typography, overrides.Typography)
	out.Spacing = mergeGroup(base.Spacing, overrides.Spacing)
	out.Borders = mergeGroup(base.Borders, overrides.Borders)
	out.Shadows = mergeGroup(base.Shadows, overrides.Shadows)
	return out
}

// ExtractDiff computes the override object that reproduces modified from
// base: for every leaf key and for primaryColor, the key is included only
// when the values differ under strict inequality. Groups with no differing
// leaves are omitted entirely, so ExtractDiff(b, b) is the zero value.
func ExtractDiff(base, modified models.ThemeConfig) models.ThemeOverrides {
	var out models.ThemeOverrides
	if modified.PrimaryColor != base.PrimaryColor {
		out.PrimaryColor = modified.PrimaryColor
	}
	out.Colors = diffGroup(base.Colors, modified.Colors)
	out.Typography = diffGroup(base.Typography, modified.Typography)
	out.Spacing = diffGroup(base.Spacing, modified.Spacing)
	out.Borders = diffGroup(base.Borders, modified.Borders)
	out.Shadows = diffGroup(base.Shadows, modified.Shadows)
	return out
}

// mergeGroup copies base and overlays override keys on top. Always returns
// a fresh map so callers can never alias a tenant's base token group.
func mergeGroup(base, override models.TokenGroup) models.TokenGroup {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	merged := make(models.TokenGroup, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// diffGroup returns the keys of modified whose values differ from base,
// or nil when nothing differs.
func diffGroup(base, modified models.TokenGroup) models.TokenGroup {
	var diff models.TokenGroup
	for k, v := range modified {
		if baseVal, ok := base[k]; ok && leafEqual(baseVal, v) {
			continue
		}
		if diff == nil {
			diff = make(models.TokenGroup)
		}
		diff[k] = v
	}
	return diff
}

// leafEqual compares two leaf token values. DeepEqual keeps the comparison
// total even if a caller smuggles in a non-comparable value.
func leafEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
