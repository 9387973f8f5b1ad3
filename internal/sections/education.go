package sections

import (
	"strings"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Education renders the education section. The academic layout puts the
// institution and right-aligned dates on one row with the degree uppercased
// beneath; the default layout stacks degree, institution and dates.
func Education(records []types.Education, tpl types.Template, opts Options) []layout.Node {
	if len(records) == 0 {
		return nil
	}
	p := resolvePalette(tpl)

	var out []layout.Node
	for i, rec := range records {
		var fragments []layout.Node
		if opts.Layout == LayoutAcademic {
			fragments = academicEducationHeader(rec, p, opts)
		} else {
			fragments = defaultEducationHeader(rec, p, opts)
		}
		if textutil.HasVisibleText(rec.Description) {
			fragments = append(fragments, layout.Node{
				Text:       textutil.CleanText(rec.Description),
				FontSize:   opts.Styles.Paragraph.FontSize,
				Color:      p.body,
				LineHeight: opts.Styles.Paragraph.LineHeight,
				Margin:     layout.Margins(0, 2, 0, 0),
			})
		}
		out = appendRecord(out, fragments, i == len(records)-1, opts.spacing())
	}
	return out
}

// degreeLabel joins degree and field of study, skipping blanks.
func degreeLabel(rec types.Education) string {
	var parts []string
	if textutil.HasVisibleText(rec.Degree) {
		parts = append(parts, textutil.CleanText(rec.Degree))
	}
	if textutil.HasVisibleText(rec.FieldOfStudy) {
		parts = append(parts, textutil.CleanText(rec.FieldOfStudy))
	}
	return strings.Join(parts, ", ")
}

func educationDates(rec types.Education) string {
	if rec.StartDate == "" && rec.EndDate == "" {
		return ""
	}
	return textutil.FormatDateRange(rec.StartDate, rec.EndDate)
}

func defaultEducationHeader(rec types.Education, p palette, opts Options) []layout.Node {
	var fragments []layout.Node
	if label := degreeLabel(rec); label != "" {
		fragments = append(fragments, layout.Node{
			Text: label, FontSize: opts.Styles.Subheader.FontSize, Bold: true, Color: p.body,
		})
	}
	inst := textutil.HasVisibleText(rec.Institution)
	dates := educationDates(rec)
	switch {
	case inst && dates != "":
		fragments = append(fragments, layout.Node{
			Columns: []layout.Node{
				{Text: textutil.CleanText(rec.Institution), FontSize: opts.Styles.Paragraph.FontSize, Bold: true, Color: p.accent, Width: "*"},
				{Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted, Alignment: "right", Width: "auto"},
			},
			Margin: layout.Margins(0, 1, 0, 2),
		})
	case inst:
		fragments = append(fragments, layout.Node{
			Text: textutil.CleanText(rec.Institution), FontSize: opts.Styles.Paragraph.FontSize, Bold: true, Color: p.accent,
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

func academicEducationHeader(rec types.Education, p palette, opts Options) []layout.Node {
	var fragments []layout.Node
	inst := textutil.HasVisibleText(rec.Institution)
	dates := educationDates(rec)
	if inst || dates != "" {
		row := layout.Node{ColumnGap: 8}
		if inst {
			row.Columns = append(row.Columns, layout.Node{
				Text: textutil.CleanText(rec.Institution), FontSize: opts.Styles.Subheader.FontSize, Bold: true, Color: p.body, Width: "*",
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
	if label := degreeLabel(rec); label != "" {
		fragments = append(fragments, layout.Node{
			Text:     strings.ToUpper(label),
			FontSize: opts.Styles.Small.FontSize,
			Color:    p.muted,
			Margin:   layout.Margins(0, 1, 0, 2),
		})
	}
	return fragments
}
