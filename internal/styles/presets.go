// Package styles maps named presets to typography, page margins and section
// spacing, and assembles the document-level style configuration every
// template renderer starts from.
package styles

import (
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// DefaultPreset is used whenever a preset name is not recognized.
const DefaultPreset = "conservative"

// TextStyle is the typography for one text role.
type TextStyle struct {
	FontSize   float64
	Color      string
	Bold       bool
	LineHeight float64
}

// StyleSet is the fixed-shape bundle of text roles a renderer draws from.
type StyleSet struct {
	Header    TextStyle
	Tagline   TextStyle
	Subheader TextStyle
	Paragraph TextStyle
	Small     TextStyle
}

// presetFunc builds a StyleSet for one preset given the resolved palette and
// the font-size multiplier.
type presetFunc func(tpl types.Template, scale float64) StyleSet

var presets = map[string]presetFunc{
	"conservative": conservativeStyles,
	"modern":       modernStyles,
	"compact":      compactStyles,
	"spacious":     spaciousStyles,
	"creative":     creativeStyles,
	"technical":    technicalStyles,
}

// ForPreset resolves a preset by name, scaling font sizes by the
// customization's font-size preference. Unknown names fall back to
// conservative.
func ForPreset(name string, tpl types.Template, c types.Customization) StyleSet {
	fn, ok := presets[name]
	if !ok {
		fn = presets[DefaultPreset]
	}
	return fn(tpl, textutil.FontScale(c.FontSize))
}

func roleColors(tpl types.Template) (header, body, accent, muted string) {
	header = textutil.GetColor(tpl, types.ColorHeader, "#111827")
	body = textutil.GetColor(tpl, types.ColorBody, "#1f2937")
	accent = textutil.GetColor(tpl, types.ColorAccent, "#0d9488")
	muted = textutil.GetColor(tpl, types.ColorMuted, "#6b7280")
	return header, body, accent, muted
}

func conservativeStyles(tpl types.Template, scale float64) StyleSet {
	header, body, accent, muted := roleColors(tpl)
	return StyleSet{
		Header:    TextStyle{FontSize: 20 * scale, Color: header, Bold: true},
		Tagline:   TextStyle{FontSize: 10.5 * scale, Color: muted, LineHeight: 1.2},
		Subheader: TextStyle{FontSize: 12 * scale, Color: accent, Bold: true},
		Paragraph: TextStyle{FontSize: 9.5 * scale, Color: body, LineHeight: 1.25},
		Small:     TextStyle{FontSize: 8.5 * scale, Color: muted},
	}
}

func modernStyles(tpl types.Template, scale float64) StyleSet {
	header, body, accent, muted := roleColors(tpl)
	return StyleSet{
		Header:    TextStyle{FontSize: 24 * scale, Color: header, Bold: true},
		Tagline:   TextStyle{FontSize: 11 * scale, Color: accent, LineHeight: 1.2},
		Subheader: TextStyle{FontSize: 13 * scale, Color: accent, Bold: true},
		Paragraph: TextStyle{FontSize: 10 * scale, Color: body, LineHeight: 1.3},
		Small:     TextStyle{FontSize: 8.5 * scale, Color: muted},
	}
}

func compactStyles(tpl types.Template, scale float64) StyleSet {
	header, body, accent, muted := roleColors(tpl)
	return StyleSet{
		Header:    TextStyle{FontSize: 18 * scale, Color: header, Bold: true},
		Tagline:   TextStyle{FontSize: 9.5 * scale, Color: muted, LineHeight: 1.1},
		Subheader: TextStyle{FontSize: 11 * scale, Color: accent, Bold: true},
		Paragraph: TextStyle{FontSize: 9 * scale, Color: body, LineHeight: 1.15},
		Small:     TextStyle{FontSize: 8 * scale, Color: muted},
	}
}

func spaciousStyles(tpl types.Template, scale float64) StyleSet {
	header, body, accent, muted := roleColors(tpl)
	return StyleSet{
		Header:    TextStyle{FontSize: 26 * scale, Color: header, Bold: true},
		Tagline:   TextStyle{FontSize: 11.5 * scale, Color: muted, LineHeight: 1.35},
		Subheader: TextStyle{FontSize: 14 * scale, Color: accent, Bold: true},
		Paragraph: TextStyle{FontSize: 10.5 * scale, Color: body, LineHeight: 1.45},
		Small:     TextStyle{FontSize: 9 * scale, Color: muted},
	}
}

func creativeStyles(tpl types.Template, scale float64) StyleSet {
	header, body, accent, muted := roleColors(tpl)
	return StyleSet{
		Header:    TextStyle{FontSize: 28 * scale, Color: accent, Bold: true},
		Tagline:   TextStyle{FontSize: 11 * scale, Color: header, LineHeight: 1.3},
		Subheader: TextStyle{FontSize: 13.5 * scale, Color: accent, Bold: true},
		Paragraph: TextStyle{FontSize: 10 * scale, Color: body, LineHeight: 1.35},
		Small:     TextStyle{FontSize: 8.5 * scale, Color: muted},
	}
}

func technicalStyles(tpl types.Template, scale float64) StyleSet {
	header, body, accent, muted := roleColors(tpl)
	return StyleSet{
		Header:    TextStyle{FontSize: 19 * scale, Color: header, Bold: true},
		Tagline:   TextStyle{FontSize: 10 * scale, Color: muted, LineHeight: 1.2},
		Subheader: TextStyle{FontSize: 11.5 * scale, Color: accent, Bold: true},
		Paragraph: TextStyle{FontSize: 9.5 * scale, Color: body, LineHeight: 1.2},
		Small:     TextStyle{FontSize: 8 * scale, Color: muted},
	}
}

var pageMargins = map[string][4]float64{
	"conservative": {40, 60, 40, 60},
	"modern":       {36, 50, 36, 50},
	"compact":      {30, 40, 30, 40},
	"spacious":     {50, 70, 50, 70},
	"creative":     {40, 56, 40, 56},
	"technical":    {36, 48, 36, 48},
}

// PageMargins returns [left, top, right, bottom] page margins for a preset,
// falling back to conservative for unknown names.
func PageMargins(preset string) [4]float64 {
	if m, ok := pageMargins[preset]; ok {
		return m
	}
	return pageMargins[DefaultPreset]
}

var sectionSpacing = map[string]float64{
	"conservative": 14,
	"modern":       16,
	"compact":      10,
	"spacious":     22,
	"creative":     18,
	"technical":    12,
}

// SectionSpacing returns the vertical gap between sections for a preset,
// falling back to conservative for unknown names.
func SectionSpacing(preset string) float64 {
	if s, ok := sectionSpacing[preset]; ok {
		return s
	}
	return sectionSpacing[DefaultPreset]
}
