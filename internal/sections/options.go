// Package sections provides one builder per CV section category. Every
// builder follows the same contract: a typed record slice, the resolved
// template palette and per-section options in, an ordered slice of layout
// nodes out. Builders never error; records with nothing displayable simply
// produce nothing.
package sections

import (
	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/styles"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Record layout variants understood by the experience and education builders.
const (
	LayoutDefault    = "default"
	LayoutAcademic   = "academic"
	LayoutStructured = "structured"
)

// Skill layout variants.
const (
	SkillsList = "list"
	SkillsGrid = "grid"
)

// Options carries the typography and layout switches a section builder needs.
type Options struct {
	Layout      string // LayoutDefault, LayoutAcademic or LayoutStructured
	Styles      styles.StyleSet
	Spacing     float64 // inter-record spacing; 0 uses 10
	SkillLayout string  // SkillsList or SkillsGrid
	GridColumns int     // grid layout column count; 0 uses 3
	ShowLevels  bool    // append "(Level)" to skill names in list layout
	BarWidth    float64 // proficiency bar width; 0 uses 120
}

func (o Options) spacing() float64 {
	if o.Spacing == 0 {
		return 10
	}
	return o.Spacing
}

func (o Options) gridColumns() int {
	if o.GridColumns <= 0 {
		return 3
	}
	return o.GridColumns
}

func (o Options) barWidth() float64 {
	if o.BarWidth <= 0 {
		return 120
	}
	return o.BarWidth
}

// palette bundles the color roles every builder resolves the same way.
type palette struct {
	body    string
	muted   string
	accent  string
	divider string
	fill    string
}

func resolvePalette(tpl types.Template) palette {
	return palette{
		body:    textutil.GetColor(tpl, types.ColorBody, "#1f2937"),
		muted:   textutil.GetColor(tpl, types.ColorMuted, "#6b7280"),
		accent:  textutil.GetColor(tpl, types.ColorAccent, "#0d9488"),
		divider: textutil.GetColor(tpl, types.ColorDivider, "#e5e7eb"),
		fill:    textutil.GetColor(tpl, types.ColorSkillBg, "#f3f4f6"),
	}
}

// appendRecord wraps one record's fragments in a stack, spacing records apart
// without trailing margin after the last one.
func appendRecord(out []layout.Node, fragments []layout.Node, last bool, spacing float64) []layout.Node {
	if len(fragments) == 0 {
		return out
	}
	record := layout.Stack(fragments...)
	if !last {
		record.Margin = layout.MarginBottom(spacing)
	}
	return append(out, record)
}

// visibleItems filters a string slice down to entries with displayable text,
// cleaned for emission.
func visibleItems(items []string) []string {
	var out []string
	for _, it := range items {
		if textutil.HasVisibleText(it) {
			out = append(out, textutil.CleanText(it))
		}
	}
	return out
}
