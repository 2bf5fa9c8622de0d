package models

// TokenGroup is a flat mapping from design-token name to a string or number
// value. Values are held as any because token files mix both; consumers never
// nest beyond one level inside a group.
type TokenGroup map[string]any

// DesignTokenSet holds the five named token groups of a tenant theme.
// Immutable once constructed; overrides never mutate a base set in place.
type DesignTokenSet struct {
	Colors     TokenGroup `json:"colors,omitempty" yaml:"colors"`
	Typography TokenGroup `json:"typography,omitempty" yaml:"typography"`
	Spacing    TokenGroup `json:"spacing,omitempty" yaml:"spacing"`
	Borders    TokenGroup `json:"borders,omitempty" yaml:"borders"`
	Shadows    TokenGroup `json:"shadows,omitempty" yaml:"shadows"`
}

// ThemeConfig is a tenant's effective visual configuration: the design token
// set plus the top-level primary color.
type ThemeConfig struct {
	PrimaryColor   string `json:"primaryColor,omitempty" yaml:"primary_color"`
	DesignTokenSet `yaml:",inline"`
}

// ThemeOverrides is a partial mirror of ThemeConfig. Every field is optional
// and present only when it differs from the base configuration it layers on.
type ThemeOverrides struct {
	PrimaryColor string     `json:"primaryColor,omitempty"`
	Colors       TokenGroup `json:"colors,omitempty"`
	Typography   TokenGroup `json:"typography,omitempty"`
	Spacing      TokenGroup `json:"spacing,omitempty"`
	Borders      TokenGroup `json:"borders,omitempty"`
	Shadows      TokenGroup `json:"shadows,omitempty"`
}

// IsZero reports whether the overrides carry no replacements at all
func (o ThemeOverrides) IsZero() bool {
	return o.PrimaryColor == "" &&
		len(o.Colors) == 0 &&
		len(o.Typography) == 0 &&
		len(o.Spacing) == 0 &&
		len(o.Borders) == 0 &&
		len(o.Shadows) == 0
}
