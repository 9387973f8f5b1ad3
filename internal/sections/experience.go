package sections

import (
	"strings"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Experience renders the work-experience section. The layout option selects
// between the stacked default presentation, the academic one-row
// entity-plus-dates presentation, and the structured filled-header
// presentation.
func Experience(records []types.WorkExperience, tpl types.Template, opts Options) []layout.Node {
	if len(records) == 0 {
		return nil
	}
	p := resolvePalette(tpl)

	var out []layout.Node
	for i, rec := range records {
		var fragments []layout.Node
		switch opts.Layout {
		case LayoutAcademic:
			fragments = academicExperienceHeader(rec, p, opts)
		case LayoutStructured:
			fragments = structuredExperienceHeader(rec, p, opts)
		default:
			fragments = defaultExperienceHeader(rec, p, opts)
		}
		fragments = append(fragments, experienceBody(rec, p, opts)...)
		out = appendRecord(out, fragments, i == len(records)-1, opts.spacing())
	}
	return out
}

func experienceDates(rec types.WorkExperience) string {
	if rec.HideDate || (rec.StartDate == "" && rec.EndDate == "") {
		return ""
	}
	return textutil.FormatDateRange(rec.StartDate, rec.EndDate)
}

func defaultExperienceHeader(rec types.WorkExperience, p palette, opts Options) []layout.Node {
	var fragments []layout.Node
	if textutil.HasVisibleText(rec.Position) {
		fragments = append(fragments, layout.Node{
			Text:     textutil.CleanText(rec.Position),
			FontSize: opts.Styles.Subheader.FontSize,
			Bold:     true,
			Color:    p.body,
		})
	}
	company := textutil.HasVisibleText(rec.CompanyName)
	dates := experienceDates(rec)
	switch {
	case company && dates != "":
		fragments = append(fragments, layout.Node{
			Columns: []layout.Node{
				{Text: textutil.CleanText(rec.CompanyName), FontSize: opts.Styles.Paragraph.FontSize, Bold: true, Color: p.accent, Width: "*"},
				{Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted, Alignment: "right", Width: "auto"},
			},
			Margin: layout.Margins(0, 1, 0, 2),
		})
	case company:
		fragments = append(fragments, layout.Node{
			Text: textutil.CleanText(rec.CompanyName), FontSize: opts.Styles.Paragraph.FontSize, Bold: true, Color: p.accent,
			Margin: layout.Margins(0, 1, 0, 2),
		})
	case dates != "":
		fragments = append(fragments, layout.Node{
			Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted,
			Margin: layout.Margins(0, 1, 0, 2),
		})
	}
	return fragments
}

// academicExperienceHeader puts the company and the right-aligned date range
// on one row, with the position uppercased beneath.
func academicExperienceHeader(rec types.WorkExperience, p palette, opts Options) []layout.Node {
	var fragments []layout.Node
	company := textutil.HasVisibleText(rec.CompanyName)
	dates := experienceDates(rec)
	if company || dates != "" {
		row := layout.Node{ColumnGap: 8}
		if company {
			row.Columns = append(row.Columns, layout.Node{
				Text: textutil.CleanText(rec.CompanyName), FontSize: opts.Styles.Subheader.FontSize, Bold: true, Color: p.body, Width: "*",
			})
		} else {
			row.Columns = append(row.Columns, layout.Node{Text: "", Width: "*"})
		}
		if dates != "" {
			row.Columns = append(row.Columns, layout.Node{
				Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted, Alignment: "right", Width: "auto",
			})
		}
		fragments = append(fragments, row)
	}
	if textutil.HasVisibleText(rec.Position) {
		fragments = append(fragments, layout.Node{
			Text:     strings.ToUpper(textutil.CleanText(rec.Position)),
			FontSize: opts.Styles.Small.FontSize,
			Color:    p.muted,
			Margin:   layout.Margins(0, 1, 0, 2),
		})
	}
	return fragments
}

// structuredExperienceHeader renders a filled-background block holding the
// position and a "Company | Date range" line.
func structuredExperienceHeader(rec types.WorkExperience, p palette, opts Options) []layout.Node {
	var inner []layout.Node
	if textutil.HasVisibleText(rec.Position) {
		inner = append(inner, layout.Node{
			Text: textutil.CleanText(rec.Position), FontSize: opts.Styles.Subheader.FontSize, Bold: true, Color: p.body,
		})
	}
	var parts []string
	if textutil.HasVisibleText(rec.CompanyName) {
		parts = append(parts, textutil.CleanText(rec.CompanyName))
	}
	if dates := experienceDates(rec); dates != "" {
		parts = append(parts, dates)
	}
	if len(parts) > 0 {
		inner = append(inner, layout.Node{
			Text: strings.Join(parts, " | "), FontSize: opts.Styles.Small.FontSize, Color: p.muted,
		})
	}
	if len(inner) == 0 {
		return nil
	}
	return []layout.Node{{
		Table: &layout.Table{
			Widths: []any{"*"},
			Body: [][]layout.Node{{
				{Stack: inner, FillColor: p.fill, Margin: layout.Margins(6, 4, 6, 4)},
			}},
		},
		TableLayout: "noBorders",
		Margin:      layout.MarginBottom(4),
	}}
}

func experienceBody(rec types.WorkExperience, p palette, opts Options) []layout.Node {
	var fragments []layout.Node
	if textutil.HasVisibleText(rec.Description) {
		fragments = append(fragments, layout.Node{
			Text:       textutil.CleanText(rec.Description),
			FontSize:   opts.Styles.Paragraph.FontSize,
			Color:      p.body,
			LineHeight: opts.Styles.Paragraph.LineHeight,
			Margin:     layout.Margins(0, 2, 0, 0),
		})
	}
	for _, cat := range rec.ResponsibilityCategories {
		items := visibleItems(cat.Items)
		// A category with no visible items is dropped entirely; the label is
		// never shown alone.
		if len(items) == 0 {
			continue
		}
		if textutil.HasVisibleText(cat.Name) {
			fragments = append(fragments, layout.Node{
				Text:     textutil.CleanText(cat.Name),
				FontSize: opts.Styles.Paragraph.FontSize,
				Bold:     true,
				Color:    p.body,
				Margin:   layout.Margins(0, 3, 0, 1),
			})
		}
		ul := make([]layout.Node, 0, len(items))
		for _, it := range items {
			ul = append(ul, layout.Node{Text: it, FontSize: opts.Styles.Paragraph.FontSize, Color: p.body})
		}
		fragments = append(fragments, layout.Node{UL: ul, Margin: layout.Margins(8, 0, 0, 0)})
	}
	return fragments
}
