package sections

import (
	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Projects renders the projects section: title with right-aligned date range,
// description, and a linked URL line.
func Projects(records []types.Project, tpl types.Template, opts Options) []layout.Node {
	if len(records) == 0 {
		return nil
	}
	p := resolvePalette(tpl)
	link := textutil.GetColor(tpl, types.ColorLink, p.accent)

	var out []layout.Node
	for i, rec := range records {
		var fragments []layout.Node

		title := textutil.HasVisibleText(rec.Title)
		dates := ""
		if rec.StartDate != "" || rec.EndDate != "" {
			dates = textutil.FormatDateRange(rec.StartDate, rec.EndDate)
		}
		switch {
		case title && dates != "":
			fragments = append(fragments, layout.Node{
				Columns: []layout.Node{
					{Text: textutil.CleanText(rec.Title), FontSize: opts.Styles.Subheader.FontSize, Bold: true, Color: p.body, Width: "*"},
					{Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted, Alignment: "right", Width: "auto"},
				},
			})
		case title:
			fragments = append(fragments, layout.Node{
				Text: textutil.CleanText(rec.Title), FontSize: opts.Styles.Subheader.FontSize, Bold: true, Color: p.body,
			})
		case dates != "":
			fragments = append(fragments, layout.Node{
				Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted,
			})
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
		if textutil.HasVisibleText(rec.URL) {
			fragments = append(fragments, layout.Node{
				Text:     rec.URL,
				Link:     rec.URL,
				FontSize: opts.Styles.Small.FontSize,
				Color:    link,
				Margin:   layout.Margins(0, 1, 0, 0),
			})
		}
		out = appendRecord(out, fragments, i == len(records)-1, opts.spacing())
	}
	return out
}
