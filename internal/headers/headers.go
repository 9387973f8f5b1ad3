// Package headers implements the section-header visual strategies shared by
// the template renderers. Each strategy is a pure function from a title and
// palette to layout nodes; the strategy is selected by name with a silent
// fallback to the "line" style.
package headers

import (
	"strings"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// DefaultStyle is the fallback header style name.
const DefaultStyle = "line"

// DefaultRuleWidth spans the content width of an A4 page with conservative
// margins. Callers with other margins pass their own width in Options.
const DefaultRuleWidth = 515.28

// Options carries the typography and geometry a header strategy needs.
type Options struct {
	FontSize     float64
	Color        string  // title color; "" resolves from the palette accent
	RuleColor    string  // rule/bar color; "" resolves from the palette divider
	Width        float64 // available content width; 0 uses DefaultRuleWidth
	MarginBottom float64 // space under the header; 0 uses a per-style default
}

// Builder renders one header visual style. Builders always return a node
// slice so callers compose them uniformly.
type Builder func(title string, tpl types.Template, opts Options) []layout.Node

var builders = map[string]Builder{
	"line":       Line,
	"minimal":    Minimal,
	"boldBar":    BoldBar,
	"filled":     Filled,
	"icon":       Icon,
	"sideBorder": SideBorder,
	"classic":    Classic,
	"academic":   Academic,
}

// For returns the builder registered under styleName, defaulting to the
// "line" style for unknown names.
func For(styleName string) Builder {
	if b, ok := builders[styleName]; ok {
		return b
	}
	return builders[DefaultStyle]
}

func (o Options) resolve(tpl types.Template) Options {
	if o.FontSize == 0 {
		o.FontSize = 12
	}
	if o.Color == "" {
		o.Color = textutil.GetColor(tpl, types.ColorAccent, "#0d9488")
	}
	if o.RuleColor == "" {
		o.RuleColor = textutil.GetColor(tpl, types.ColorDivider, "#e5e7eb")
	}
	if o.Width == 0 {
		o.Width = DefaultRuleWidth
	}
	if o.MarginBottom == 0 {
		o.MarginBottom = 8
	}
	return o
}

// Line renders the title with a thin rule directly beneath it.
func Line(title string, tpl types.Template, opts Options) []layout.Node {
	o := opts.resolve(tpl)
	rule := layout.HLine(o.Width, 1, o.RuleColor)
	rule.Margin = layout.Margins(0, 2, 0, o.MarginBottom)
	return []layout.Node{
		{Text: title, FontSize: o.FontSize, Bold: true, Color: o.Color},
		rule,
	}
}

// Minimal renders just the bold title with bottom spacing.
func Minimal(title string, tpl types.Template, opts Options) []layout.Node {
	o := opts.resolve(tpl)
	return []layout.Node{
		{Text: title, FontSize: o.FontSize, Bold: true, Color: o.Color, Margin: layout.MarginBottom(o.MarginBottom)},
	}
}

// BoldBar renders the title over a short thick accent bar.
func BoldBar(title string, tpl types.Template, opts Options) []layout.Node {
	o := opts.resolve(tpl)
	bar := layout.Node{
		Canvas: []layout.Primitive{{Type: "rect", W: 36, H: 3, Color: o.Color}},
		Margin: layout.Margins(0, 2, 0, o.MarginBottom),
	}
	return []layout.Node{
		{Text: title, FontSize: o.FontSize, Bold: true, Color: o.Color},
		bar,
	}
}

// Filled renders the title inside a full-width filled background row.
func Filled(title string, tpl types.Template, opts Options) []layout.Node {
	o := opts.resolve(tpl)
	fill := textutil.GetColor(tpl, types.ColorSkillBg, "#f3f4f6")
	return []layout.Node{
		{
			Table: &layout.Table{
				Widths: []any{"*"},
				Body: [][]layout.Node{{
					{
						Text:      title,
						FontSize:  o.FontSize,
						Bold:      true,
						Color:     o.Color,
						FillColor: fill,
						Margin:    layout.Margins(6, 4, 6, 4),
					},
				}},
			},
			TableLayout: "noBorders",
			Margin:      layout.MarginBottom(o.MarginBottom),
		},
	}
}

// Icon renders the title prefixed with a diamond glyph in the accent color.
func Icon(title string, tpl types.Template, opts Options) []layout.Node {
	o := opts.resolve(tpl)
	return []layout.Node{
		{
			Columns: []layout.Node{
				{Text: "◆", FontSize: o.FontSize - 2, Color: o.Color, Width: 14},
				{Text: title, FontSize: o.FontSize, Bold: true, Color: o.Color, Width: "*"},
			},
			ColumnGap: 2,
			Margin:    layout.MarginBottom(o.MarginBottom),
		},
	}
}

// SideBorder renders a short vertical accent rule beside the title.
func SideBorder(title string, tpl types.Template, opts Options) []layout.Node {
	o := opts.resolve(tpl)
	return []layout.Node{
		{
			Columns: []layout.Node{
				{
					Canvas: []layout.Primitive{{Type: "rect", W: 3, H: o.FontSize + 2, Color: o.Color}},
					Width:  8,
				},
				{Text: title, FontSize: o.FontSize, Bold: true, Color: o.Color, Width: "*"},
			},
			ColumnGap: 4,
			Margin:    layout.MarginBottom(o.MarginBottom),
		},
	}
}

// Classic renders the title centered, uppercased, over a full-width rule.
func Classic(title string, tpl types.Template, opts Options) []layout.Node {
	o := opts.resolve(tpl)
	rule := layout.HLine(o.Width, 0.75, o.RuleColor)
	rule.Margin = layout.Margins(0, 3, 0, o.MarginBottom)
	return []layout.Node{
		{Text: strings.ToUpper(title), FontSize: o.FontSize, Bold: true, Color: o.Color, Alignment: "center"},
		rule,
	}
}

// Academic renders the bold title in a fixed-width left cell with a ruled
// line filling the remaining width of the same row, so text and rule share a
// baseline. The table is borderless.
func Academic(title string, tpl types.Template, opts Options) []layout.Node {
	o := opts.resolve(tpl)
	rule := layout.HLine(o.Width-130, 0.75, o.RuleColor)
	rule.Margin = layout.Margins(4, o.FontSize*0.55, 0, 0)
	return []layout.Node{
		{
			Table: &layout.Table{
				Widths: []any{125, "*"},
				Body: [][]layout.Node{{
					{Text: title, FontSize: o.FontSize, Bold: true, Color: o.Color},
					rule,
				}},
			},
			TableLayout: "noBorders",
			Margin:      layout.MarginBottom(o.MarginBottom),
		},
	}
}
