package textutil

import "github.com/jonathan/cv-document-engine/internal/types"

// GetColor looks up a palette color by role, returning fallback when the
// template has no non-empty value for that role. Never returns "".
func GetColor(tpl types.Template, key, fallback string) string {
	if tpl.Colors != nil {
		if v, ok := tpl.Colors[key]; ok && v != "" {
			return v
		}
	}
	return fallback
}

// MergeCustomization overlays customization colors onto a template palette
// key-by-key. With no overrides the template is returned as-is; otherwise a
// new palette map is built so the input template is never mutated.
func MergeCustomization(tpl types.Template, c types.Customization) types.Template {
	if len(c.Colors) == 0 {
		return tpl
	}
	merged := make(map[string]string, len(tpl.Colors)+len(c.Colors))
	for k, v := range tpl.Colors {
		merged[k] = v
	}
	for k, v := range c.Colors {
		if v != "" {
			merged[k] = v
		}
	}
	tpl.Colors = merged
	return tpl
}

var fontScales = map[string]float64{
	"small":  0.9,
	"medium": 1.0,
	"large":  1.1,
}

var spacingScales = map[string]float64{
	"compact":  0.8,
	"normal":   1.0,
	"spacious": 1.2,
}

// FontScale returns the font-size multiplier for a size preference.
// Unknown preferences scale by 1.0.
func FontScale(size string) float64 {
	if s, ok := fontScales[size]; ok {
		return s
	}
	return 1.0
}

// SpacingScale returns the spacing multiplier for a spacing preference.
// Unknown preferences scale by 1.0.
func SpacingScale(spacing string) float64 {
	if s, ok := spacingScales[spacing]; ok {
		return s
	}
	return 1.0
}
