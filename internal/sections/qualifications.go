package sections

import (
	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Qualifications renders the qualification-equivalence section: the level
// label, the description, and supporting evidence as a bullet list.
func Qualifications(records []types.QualificationEquivalence, tpl types.Template, opts Options) []layout.Node {
	if len(records) == 0 {
		return nil
	}
	p := resolvePalette(tpl)

	var out []layout.Node
	for i, rec := range records {
		var fragments []layout.Node
		if level := rec.DisplayLevel(); textutil.HasVisibleText(level) {
			fragments = append(fragments, layout.Node{
				Text: textutil.CleanText(level), FontSize: opts.Styles.Subheader.FontSize, Bold: true, Color: p.accent,
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
		if items := visibleItems(rec.Evidence); len(items) > 0 {
			ul := make([]layout.Node, 0, len(items))
			for _, it := range items {
				ul = append(ul, layout.Node{Text: it, FontSize: opts.Styles.Paragraph.FontSize, Color: p.body})
			}
			fragments = append(fragments, layout.Node{UL: ul, Margin: layout.Margins(8, 2, 0, 0)})
		}
		out = appendRecord(out, fragments, i == len(records)-1, opts.spacing())
	}
	return out
}
