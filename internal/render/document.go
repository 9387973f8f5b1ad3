package render

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/templates"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Document renders the paginated document description for a request. It is a
// pure function of its inputs and never fails on data: missing fields
// suppress their fragments and unknown names fall back to defaults.
func Document(req Request) *layout.Document {
	r := resolveRequest(req)

	doc := &layout.Document{
		PageSize:     r.doc.PageSize,
		PageMargins:  r.doc.PageMargins,
		DefaultStyle: r.doc.DefaultStyle,
		Info:         r.documentInfo(),
		Footer:       r.footer(),
	}

	if r.desc.PageLayout == templates.PageSidebar {
		doc.Content = r.sidebarContent()
	} else {
		doc.Content = append(r.centeredHeader(), r.columnContent(r.desc.Main, r.contentWidth())...)
	}
	return doc
}

func (r *resolved) documentInfo() layout.Info {
	name := r.ownerName()
	info := layout.Info{
		Subject:  "Curriculum Vitae",
		Keywords: "CV, resume, " + r.desc.Name,
	}
	if name != "" {
		info.Title = name + " - CV"
		info.Author = name
	} else {
		info.Title = "CV"
	}
	return info
}

// slotNode returns the visual slot shared by the QR code and the photo. The
// QR code takes the slot when requested; otherwise the photo; otherwise the
// slot is omitted entirely.
func (r *resolved) slotNode(alignment string) (layout.Node, bool) {
	switch {
	case r.includeQR:
		return layout.Node{QR: r.cvURL, Fit: []float64{60, 60}, Alignment: alignment, Margin: layout.MarginBottom(6)}, true
	case r.includePhoto:
		return layout.Node{Image: r.profile.Photo, Fit: []float64{64, 64}, Alignment: alignment, Margin: layout.MarginBottom(6)}, true
	default:
		return layout.Node{}, false
	}
}

// centeredHeader builds the single-column profile block: slot, name, contact
// line, bio, closing rule.
func (r *resolved) centeredHeader() []layout.Node {
	if !r.visible[types.SectionProfile] {
		return nil
	}
	s := r.doc.Styles
	muted := textutil.GetColor(r.palette, types.ColorMuted, "#6b7280")
	divider := textutil.GetColor(r.palette, types.ColorDivider, "#e5e7eb")

	var out []layout.Node
	if slot, ok := r.slotNode("center"); ok {
		out = append(out, slot)
	}
	if name := r.ownerName(); name != "" {
		out = append(out, layout.Node{
			Text: name, FontSize: s.Header.FontSize, Bold: true, Color: s.Header.Color, Alignment: "center",
		})
	}
	if contact := r.contactLine(); contact != "" {
		out = append(out, layout.Node{
			Text: contact, FontSize: s.Small.FontSize, Color: muted, Alignment: "center",
			Margin: layout.Margins(0, 2, 0, 0),
		})
	}
	if textutil.HasVisibleText(r.profile.Bio) {
		out = append(out, layout.Node{
			Text:       textutil.CleanText(r.profile.Bio),
			FontSize:   s.Tagline.FontSize,
			Color:      s.Tagline.Color,
			Alignment:  "center",
			LineHeight: s.Tagline.LineHeight,
			Margin:     layout.Margins(0, 4, 0, 0),
		})
	}
	if len(out) == 0 {
		return nil
	}
	rule := layout.HLine(r.contentWidth(), 1, divider)
	rule.Margin = layout.Margins(0, 8, 0, r.doc.SectionSpacing)
	return append(out, rule)
}

func (r *resolved) contactLine() string {
	var parts []string
	for _, v := range []string{r.profile.Email, r.profile.Phone, r.profile.Location, r.profile.LinkedInURL} {
		if textutil.HasVisibleText(v) {
			parts = append(parts, textutil.CleanText(v))
		}
	}
	return strings.Join(parts, "  |  ")
}

// sidebarContent builds the two-column page: the sidebar holds the slot and
// its sections, the main column opens with name and bio.
func (r *resolved) sidebarContent() []layout.Node {
	width := r.contentWidth()
	sidebarWidth := width*0.3 - 12
	mainWidth := width*0.7 - 12

	var sidebar []layout.Node
	if r.visible[types.SectionProfile] {
		if slot, ok := r.slotNode("left"); ok {
			sidebar = append(sidebar, slot)
		}
	}
	sidebar = append(sidebar, r.columnContent(r.desc.Sidebar, sidebarWidth)...)

	var main []layout.Node
	if r.visible[types.SectionProfile] {
		s := r.doc.Styles
		if name := r.ownerName(); name != "" {
			main = append(main, layout.Node{Text: name, FontSize: s.Header.FontSize, Bold: true, Color: s.Header.Color})
		}
		if textutil.HasVisibleText(r.profile.Bio) {
			main = append(main, layout.Node{
				Text:       textutil.CleanText(r.profile.Bio),
				FontSize:   s.Tagline.FontSize,
				Color:      s.Tagline.Color,
				LineHeight: s.Tagline.LineHeight,
				Margin:     layout.Margins(0, 2, 0, 0),
			})
		}
		if len(main) > 0 {
			main[len(main)-1].Margin = layout.MarginBottom(r.doc.SectionSpacing)
		}
	}
	main = append(main, r.columnContent(r.desc.Main, mainWidth)...)

	return []layout.Node{{
		Columns: []layout.Node{
			{Stack: sidebar, Width: r.desc.SidebarWidth},
			{Stack: main, Width: "*"},
		},
		ColumnGap: 24,
	}}
}

// footer builds the per-page footer factory: "<name> - Page X of Y" centered,
// with the attribution line when branding applies.
func (r *resolved) footer() layout.FooterFunc {
	name := r.ownerName()
	s := r.doc.Styles
	muted := textutil.GetColor(r.palette, types.ColorMuted, "#6b7280")
	link := textutil.GetColor(r.palette, types.ColorLink, muted)
	branding := r.branding
	siteURL := r.siteURL

	return func(currentPage, pageCount int) layout.Node {
		var text string
		if name != "" {
			text = fmt.Sprintf("%s - Page %d of %d", name, currentPage, pageCount)
		} else {
			text = fmt.Sprintf("Page %d of %d", currentPage, pageCount)
		}
		stack := []layout.Node{{
			Text: text, FontSize: s.Small.FontSize, Color: muted, Alignment: "center",
		}}
		if branding {
			stack = append(stack, layout.Node{
				Text:      "Created free at " + siteHost(siteURL),
				Link:      siteURL,
				FontSize:  s.Small.FontSize - 1,
				Color:     link,
				Alignment: "center",
				Margin:    layout.Margins(0, 2, 0, 0),
			})
		}
		return layout.Node{Stack: stack, Margin: layout.Margins(0, 10, 0, 0)}
	}
}

// siteHost strips scheme and www for the visible attribution label.
func siteHost(url string) string {
	host := strings.TrimPrefix(url, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return host
}
