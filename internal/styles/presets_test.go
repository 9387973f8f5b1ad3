package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/types"
)

var testTemplate = types.Template{
	ID: "classic",
	Colors: map[string]string{
		"header": "#111111",
		"body":   "#222222",
		"accent": "#0d9488",
		"muted":  "#888888",
	},
}

func TestForPreset_KnownPresets(t *testing.T) {
	for _, name := range []string{"conservative", "modern", "compact", "spacious", "creative", "technical"} {
		t.Run(name, func(t *testing.T) {
			set := ForPreset(name, testTemplate, types.Customization{})
			assert.Greater(t, set.Header.FontSize, set.Paragraph.FontSize)
			assert.Greater(t, set.Paragraph.FontSize, 0.0)
			assert.True(t, set.Header.Bold)
			assert.NotEmpty(t, set.Paragraph.Color)
			assert.NotEmpty(t, set.Small.Color)
		})
	}
}

func TestForPreset_UnknownFallsBackToConservative(t *testing.T) {
	got := ForPreset("no-such-preset", testTemplate, types.Customization{})
	want := ForPreset("conservative", testTemplate, types.Customization{})
	assert.Equal(t, want, got)
}

func TestForPreset_FontSizeScaling(t *testing.T) {
	base := ForPreset("conservative", testTemplate, types.Customization{})
	small := ForPreset("conservative", testTemplate, types.Customization{FontSize: "small"})
	large := ForPreset("conservative", testTemplate, types.Customization{FontSize: "large"})

	assert.InDelta(t, base.Paragraph.FontSize*0.9, small.Paragraph.FontSize, 0.001)
	assert.InDelta(t, base.Header.FontSize*1.1, large.Header.FontSize, 0.001)
}

func TestForPreset_PaletteColorsFlowThrough(t *testing.T) {
	set := ForPreset("conservative", testTemplate, types.Customization{})
	assert.Equal(t, "#111111", set.Header.Color)
	assert.Equal(t, "#222222", set.Paragraph.Color)
	assert.Equal(t, "#0d9488", set.Subheader.Color)
	assert.Equal(t, "#888888", set.Small.Color)
}

func TestPageMargins(t *testing.T) {
	assert.Equal(t, [4]float64{40, 60, 40, 60}, PageMargins("conservative"))
	assert.Equal(t, [4]float64{30, 40, 30, 40}, PageMargins("compact"))
	assert.Equal(t, PageMargins("conservative"), PageMargins("bogus"))
}

func TestSectionSpacing(t *testing.T) {
	assert.Equal(t, 14.0, SectionSpacing("conservative"))
	assert.Equal(t, 22.0, SectionSpacing("spacious"))
	assert.Equal(t, SectionSpacing("conservative"), SectionSpacing("bogus"))
}

func TestBuildDocumentConfig(t *testing.T) {
	cfg := BuildDocumentConfig(testTemplate, "modern", types.Customization{}, "")

	assert.Equal(t, layout.PageSizeA4, cfg.PageSize)
	assert.Equal(t, PageMargins("modern"), cfg.PageMargins)
	assert.Equal(t, DefaultFont, cfg.DefaultStyle.Font)
	assert.Equal(t, cfg.Styles.Paragraph.FontSize, cfg.DefaultStyle.FontSize)
	assert.Equal(t, SectionSpacing("modern"), cfg.SectionSpacing)
}

func TestBuildDocumentConfig_SpacingScale(t *testing.T) {
	cfg := BuildDocumentConfig(testTemplate, "conservative", types.Customization{Spacing: "compact"}, "Georgia")
	assert.Equal(t, "Georgia", cfg.DefaultStyle.Font)
	assert.InDelta(t, 14.0*0.8, cfg.SectionSpacing, 0.001)
}
