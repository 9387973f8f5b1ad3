package sections

import (
	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Memberships renders the professional-memberships section: organisation with
// right-aligned date range and the role beneath.
func Memberships(records []types.Membership, tpl types.Template, opts Options) []layout.Node {
	if len(records) == 0 {
		return nil
	}
	p := resolvePalette(tpl)

	var out []layout.Node
	for i, rec := range records {
		var fragments []layout.Node

		org := textutil.HasVisibleText(rec.Organisation)
		dates := ""
		if rec.StartDate != "" || rec.EndDate != "" {
			dates = textutil.FormatDateRange(rec.StartDate, rec.EndDate)
		}
		switch {
		case org && dates != "":
			fragments = append(fragments, layout.Node{
				Columns: []layout.Node{
					{Text: textutil.CleanText(rec.Organisation), FontSize: opts.Styles.Paragraph.FontSize, Bold: true, Color: p.body, Width: "*"},
					{Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted, Alignment: "right", Width: "auto"},
				},
			})
		case org:
			fragments = append(fragments, layout.Node{
				Text: textutil.CleanText(rec.Organisation), FontSize: opts.Styles.Paragraph.FontSize, Bold: true, Color: p.body,
			})
		case dates != "":
			fragments = append(fragments, layout.Node{
				Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted,
			})
		}

		if textutil.HasVisibleText(rec.Role) {
			fragments = append(fragments, layout.Node{
				Text: textutil.CleanText(rec.Role), FontSize: opts.Styles.Small.FontSize, Color: p.muted,
				Margin: layout.Margins(0, 1, 0, 0),
			})
		}
		out = appendRecord(out, fragments, i == len(records)-1, opts.spacing())
	}
	return out
}
