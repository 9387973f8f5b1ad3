package sections

import (
	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Interests renders the interests section: a bold name with an optional
// description beneath.
func Interests(records []types.Interest, tpl types.Template, opts Options) []layout.Node {
	if len(records) == 0 {
		return nil
	}
	p := resolvePalette(tpl)

	var out []layout.Node
	for i, rec := range records {
		var fragments []layout.Node
		if textutil.HasVisibleText(rec.Name) {
			fragments = append(fragments, layout.Node{
				Text: textutil.CleanText(rec.Name), FontSize: opts.Styles.Paragraph.FontSize, Bold: true, Color: p.body,
			})
		}
		if textutil.HasVisibleText(rec.Description) {
			fragments = append(fragments, layout.Node{
				Text:       textutil.CleanText(rec.Description),
				FontSize:   opts.Styles.Small.FontSize,
				Color:      p.muted,
				LineHeight: opts.Styles.Paragraph.LineHeight,
				Margin:     layout.Margins(0, 1, 0, 0),
			})
		}
		out = appendRecord(out, fragments, i == len(records)-1, 6)
	}
	return out
}
