package sections

import (
	"strings"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Skills renders the skills section in either the grouped list layout or the
// grid layout, selected by options.
func Skills(skills []types.Skill, tpl types.Template, opts Options) []layout.Node {
	named := visibleSkills(skills)
	if len(named) == 0 {
		return nil
	}
	if opts.SkillLayout == SkillsGrid {
		return skillsGrid(named, tpl, opts)
	}
	return skillsList(named, tpl, opts)
}

func visibleSkills(skills []types.Skill) []types.Skill {
	var out []types.Skill
	for _, s := range skills {
		if textutil.HasVisibleText(s.Name) {
			out = append(out, s)
		}
	}
	return out
}

// skillsList renders one line per category: a bold category label followed by
// the comma-joined skill names, each optionally suffixed with its level.
func skillsList(skills []types.Skill, tpl types.Template, opts Options) []layout.Node {
	p := resolvePalette(tpl)
	groups, order := textutil.GroupSkills(skills)

	out := make([]layout.Node, 0, len(order))
	for i, cat := range order {
		names := make([]string, 0, len(groups[cat]))
		for _, s := range groups[cat] {
			name := textutil.CleanText(s.Name)
			if opts.ShowLevels && s.Level != "" {
				name += " (" + s.Level + ")"
			}
			names = append(names, name)
		}
		line := layout.Node{
			Spans: []layout.Node{
				{Text: cat + ": ", Bold: true, Color: p.body},
				{Text: strings.Join(names, ", "), Color: p.body},
			},
			FontSize: opts.Styles.Paragraph.FontSize,
		}
		if i < len(order)-1 {
			line.Margin = layout.MarginBottom(3)
		}
		out = append(out, line)
	}
	return out
}

// skillsGrid renders skill names in an N-column borderless table, padding the
// final row with empty filler cells.
func skillsGrid(skills []types.Skill, tpl types.Template, opts Options) []layout.Node {
	p := resolvePalette(tpl)
	cols := opts.gridColumns()

	widths := make([]any, cols)
	for i := range widths {
		widths[i] = "*"
	}

	var body [][]layout.Node
	var row []layout.Node
	for _, s := range skills {
		row = append(row, layout.Node{
			Text:     textutil.CleanText(s.Name),
			FontSize: opts.Styles.Paragraph.FontSize,
			Color:    p.body,
			Margin:   layout.Margins(0, 2, 0, 2),
		})
		if len(row) == cols {
			body = append(body, row)
			row = nil
		}
	}
	if len(row) > 0 {
		for len(row) < cols {
			row = append(row, layout.Node{Text: ""})
		}
		body = append(body, row)
	}

	return []layout.Node{{
		Table:       &layout.Table{Widths: widths, Body: body},
		TableLayout: "noBorders",
	}}
}

// SkillBars renders each skill as a name above a proficiency fill bar whose
// width comes from the fixed level table. Skills without a recognized level
// show only the name.
func SkillBars(skills []types.Skill, tpl types.Template, opts Options) []layout.Node {
	named := visibleSkills(skills)
	if len(named) == 0 {
		return nil
	}
	p := resolvePalette(tpl)
	width := opts.barWidth()

	var out []layout.Node
	for i, s := range named {
		fragments := []layout.Node{{
			Text:     textutil.CleanText(s.Name),
			FontSize: opts.Styles.Small.FontSize,
			Color:    p.body,
		}}
		if pct, ok := textutil.LevelPercent(s.Level); ok {
			fragments = append(fragments, layout.Node{
				Canvas: []layout.Primitive{
					{Type: "rect", W: width, H: 4, Color: p.divider},
					{Type: "rect", W: width * pct / 100, H: 4, Color: p.accent},
				},
				Margin: layout.Margins(0, 2, 0, 0),
			})
		}
		out = appendRecord(out, fragments, i == len(named)-1, 6)
	}
	return out
}

// ExpertiseGrid renders the distinct skill category names as a 3-per-row
// tiled grid with a light fill background. Individual skill names are not
// shown; templates using this pair it with a full skill list elsewhere.
func ExpertiseGrid(skills []types.Skill, tpl types.Template, opts Options) []layout.Node {
	named := visibleSkills(skills)
	if len(named) == 0 {
		return nil
	}
	p := resolvePalette(tpl)
	_, order := textutil.GroupSkills(named)

	const cols = 3
	widths := []any{"*", "*", "*"}

	var body [][]layout.Node
	var row []layout.Node
	for _, cat := range order {
		row = append(row, layout.Node{
			Text:      cat,
			FontSize:  opts.Styles.Paragraph.FontSize,
			Color:     p.body,
			FillColor: p.fill,
			Alignment: "center",
			Margin:    layout.Margins(4, 5, 4, 5),
		})
		if len(row) == cols {
			body = append(body, row)
			row = nil
		}
	}
	if len(row) > 0 {
		for len(row) < cols {
			row = append(row, layout.Node{Text: ""})
		}
		body = append(body, row)
	}

	return []layout.Node{{
		Table:       &layout.Table{Widths: widths, Body: body},
		TableLayout: "lightGrid",
	}}
}
