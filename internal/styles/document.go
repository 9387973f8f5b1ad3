package styles

import (
	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// DefaultFont is used when a template declares no font of its own.
const DefaultFont = "Helvetica"

// DocumentConfig is the document-level configuration a template renderer
// composes its output from: page geometry, base style and the resolved
// typography set.
type DocumentConfig struct {
	PageSize       string
	PageMargins    [4]float64
	DefaultStyle   layout.DefaultStyle
	Styles         StyleSet
	SectionSpacing float64
}

// BuildDocumentConfig assembles the full document configuration for a
// template and preset: fixed A4 page size, preset margins scaled spacing and
// the preset style set with customization applied.
func BuildDocumentConfig(tpl types.Template, preset string, c types.Customization, font string) DocumentConfig {
	if font == "" {
		font = DefaultFont
	}
	set := ForPreset(preset, tpl, c)
	return DocumentConfig{
		PageSize:    layout.PageSizeA4,
		PageMargins: PageMargins(preset),
		DefaultStyle: layout.DefaultStyle{
			Font:       font,
			FontSize:   set.Paragraph.FontSize,
			Color:      set.Paragraph.Color,
			LineHeight: set.Paragraph.LineHeight,
		},
		Styles:         set,
		SectionSpacing: SectionSpacing(preset) * textutil.SpacingScale(c.Spacing),
	}
}
