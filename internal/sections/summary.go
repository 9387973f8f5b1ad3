package sections

import (
	"sort"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Summary renders the professional summary: the description paragraph
// followed by a bullet list of strengths in position order. Returns nothing
// when neither part has visible text.
func Summary(summary *types.ProfessionalSummary, tpl types.Template, opts Options) []layout.Node {
	if summary == nil {
		return nil
	}
	p := resolvePalette(tpl)

	var nodes []layout.Node
	if textutil.HasVisibleText(summary.Description) {
		nodes = append(nodes, layout.Node{
			Text:       textutil.CleanText(summary.Description),
			FontSize:   opts.Styles.Paragraph.FontSize,
			Color:      p.body,
			LineHeight: opts.Styles.Paragraph.LineHeight,
		})
	}

	if items := strengthItems(summary.Strengths, 0); len(items) > 0 {
		ul := make([]layout.Node, 0, len(items))
		for _, it := range items {
			ul = append(ul, layout.Node{Text: it, FontSize: opts.Styles.Paragraph.FontSize, Color: p.body})
		}
		list := layout.Node{UL: ul}
		if len(nodes) > 0 {
			list.Margin = layout.Margins(0, 4, 0, 0)
		}
		nodes = append(nodes, list)
	}
	return nodes
}

// strengthItems returns the visible strength texts sorted by position.
// A positive limit caps the number returned.
func strengthItems(strengths []types.Strength, limit int) []string {
	sorted := make([]types.Strength, len(strengths))
	copy(sorted, strengths)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	var out []string
	for _, s := range sorted {
		if !textutil.HasVisibleText(s.Text) {
			continue
		}
		out = append(out, textutil.CleanText(s.Text))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// CareerHighlights renders the first five summary strengths as a bullet
// list. Used by templates that surface highlights as their own section.
func CareerHighlights(summary *types.ProfessionalSummary, tpl types.Template, opts Options) []layout.Node {
	if summary == nil {
		return nil
	}
	items := strengthItems(summary.Strengths, 5)
	if len(items) == 0 {
		return nil
	}
	p := resolvePalette(tpl)
	ul := make([]layout.Node, 0, len(items))
	for _, it := range items {
		ul = append(ul, layout.Node{Text: it, FontSize: opts.Styles.Paragraph.FontSize, Color: p.body})
	}
	return []layout.Node{{UL: ul}}
}
