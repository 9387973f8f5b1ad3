package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/templates"
)

// Preview renders the on-screen HTML preview for a request. It walks the
// same resolved descriptor and section-builder outputs as Document, so
// section set, order, colors and suppression match the print output for the
// same inputs.
func Preview(req Request) string {
	r := resolveRequest(req)
	h := &htmlRenderer{resolved: r}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="cv-preview" style="font-family:%s,sans-serif;font-size:%.4gpt;color:%s;line-height:%.4g;background:#ffffff;padding:%.4gpt %.4gpt;">`,
		r.doc.DefaultStyle.Font, r.doc.DefaultStyle.FontSize, r.doc.DefaultStyle.Color,
		lineHeightOr(r.doc.DefaultStyle.LineHeight), r.doc.PageMargins[1], r.doc.PageMargins[0])

	if r.desc.PageLayout == templates.PageSidebar {
		for _, n := range r.sidebarContent() {
			h.node(&b, n)
		}
	} else {
		for _, n := range r.centeredHeader() {
			h.node(&b, n)
		}
		for _, n := range r.columnContent(r.desc.Main, r.contentWidth()) {
			h.node(&b, n)
		}
	}

	if r.branding {
		fmt.Fprintf(&b,
			`<div style="text-align:center;margin-top:12pt;font-size:%.4gpt;"><a href="%s" style="color:inherit;">Created free at %s</a></div>`,
			r.doc.Styles.Small.FontSize-1, html.EscapeString(r.siteURL), html.EscapeString(siteHost(r.siteURL)))
	}

	b.WriteString("</div>")
	return b.String()
}

func lineHeightOr(v float64) float64 {
	if v == 0 {
		return 1.3
	}
	return v
}

// htmlRenderer serializes layout nodes as inline-styled HTML.
type htmlRenderer struct {
	resolved *resolved
}

func (h *htmlRenderer) node(b *strings.Builder, n layout.Node) {
	switch {
	case len(n.Columns) > 0:
		fmt.Fprintf(b, `<div style="display:flex;%s%s">`, gapStyle(n.ColumnGap), styleAttr(n))
		for _, col := range n.Columns {
			fmt.Fprintf(b, `<div style="%s">`, flexStyle(col.Width))
			inner := col
			inner.Width = nil
			h.node(b, inner)
			b.WriteString("</div>")
		}
		b.WriteString("</div>")
	case len(n.Stack) > 0:
		fmt.Fprintf(b, `<div style="%s">`, styleAttr(n))
		for _, child := range n.Stack {
			h.node(b, child)
		}
		b.WriteString("</div>")
	case len(n.UL) > 0:
		fmt.Fprintf(b, `<ul style="margin:2pt 0 2pt 14pt;padding:0;%s">`, styleAttr(n))
		for _, item := range n.UL {
			b.WriteString("<li>")
			h.inline(b, item)
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	case n.Table != nil:
		fmt.Fprintf(b, `<table style="width:100%%;border-collapse:collapse;%s">`, styleAttr(n))
		for _, row := range n.Table.Body {
			b.WriteString("<tr>")
			for _, cell := range row {
				fmt.Fprintf(b, `<td style="vertical-align:top;padding:2pt;%s">`, styleAttr(cell))
				inner := cell
				inner.FillColor = ""
				inner.Margin = nil
				h.node(b, inner)
				b.WriteString("</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</table>")
	case len(n.Canvas) > 0:
		h.canvas(b, n)
	case n.Image != "":
		fmt.Fprintf(b, `<img alt="profile photo" src="%s" style="%s%s"/>`,
			html.EscapeString(n.Image), fitStyle(n.Fit), styleAttr(n))
	case n.QR != "":
		if h.resolved.qrImage != "" {
			fmt.Fprintf(b, `<img alt="QR code" src="%s" style="%s%s"/>`,
				html.EscapeString(h.resolved.qrImage), fitStyle(n.Fit), styleAttr(n))
		} else {
			fmt.Fprintf(b, `<div class="cv-qr" data-url="%s" style="%s%s"></div>`,
				html.EscapeString(n.QR), fitStyle(n.Fit), styleAttr(n))
		}
	default:
		fmt.Fprintf(b, `<div style="%s">`, styleAttr(n))
		h.inline(b, n)
		b.WriteString("</div>")
	}
}

// inline writes a node's text content, spans included, without the wrapper.
func (h *htmlRenderer) inline(b *strings.Builder, n layout.Node) {
	if len(n.Spans) > 0 {
		for _, span := range n.Spans {
			fmt.Fprintf(b, `<span style="%s">%s</span>`, styleAttr(span), escapeText(span.Text))
		}
		return
	}
	if n.Link != "" {
		fmt.Fprintf(b, `<a href="%s" style="color:inherit;">%s</a>`, html.EscapeString(n.Link), escapeText(n.Text))
		return
	}
	b.WriteString(escapeText(n.Text))
}

// canvas maps the drawing primitives the builders emit: rules become <hr>,
// single rects become filled blocks, and a rect pair becomes a track with a
// fill bar.
func (h *htmlRenderer) canvas(b *strings.Builder, n layout.Node) {
	prims := n.Canvas
	if len(prims) == 1 && prims[0].Type == "line" {
		p := prims[0]
		fmt.Fprintf(b, `<hr style="border:0;border-top:%.4gpt solid %s;width:%.4gpt;margin:0;%s"/>`,
			p.LineWidth, p.LineColor, p.X2-p.X1, styleAttr(n))
		return
	}
	if len(prims) == 2 && prims[0].Type == "rect" && prims[1].Type == "rect" && prims[1].W <= prims[0].W {
		track, fill := prims[0], prims[1]
		fmt.Fprintf(b, `<div style="width:%.4gpt;height:%.4gpt;background:%s;%s">`,
			track.W, track.H, track.Color, styleAttr(n))
		fmt.Fprintf(b, `<div style="width:%.4g%%;height:100%%;background:%s;"></div>`,
			fill.W/track.W*100, fill.Color)
		b.WriteString("</div>")
		return
	}
	for _, p := range prims {
		if p.Type == "rect" {
			fmt.Fprintf(b, `<div style="width:%.4gpt;height:%.4gpt;background:%s;%s"></div>`,
				p.W, p.H, p.Color, styleAttr(n))
		}
	}
}

func escapeText(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br/>")
}

// styleAttr converts a node's styling fields to an inline CSS fragment.
func styleAttr(n layout.Node) string {
	var sb strings.Builder
	if n.FontSize != 0 {
		fmt.Fprintf(&sb, "font-size:%.4gpt;", n.FontSize)
	}
	if n.Bold {
		sb.WriteString("font-weight:bold;")
	}
	if n.Italics {
		sb.WriteString("font-style:italic;")
	}
	if n.Color != "" {
		fmt.Fprintf(&sb, "color:%s;", n.Color)
	}
	if n.FillColor != "" {
		fmt.Fprintf(&sb, "background-color:%s;", n.FillColor)
	}
	if n.Alignment != "" {
		fmt.Fprintf(&sb, "text-align:%s;", n.Alignment)
	}
	if n.LineHeight != 0 {
		fmt.Fprintf(&sb, "line-height:%.4g;", n.LineHeight)
	}
	if n.Decoration != "" {
		fmt.Fprintf(&sb, "text-decoration:%s;", n.Decoration)
	}
	if n.Margin != nil {
		m := *n.Margin
		fmt.Fprintf(&sb, "margin:%.4gpt %.4gpt %.4gpt %.4gpt;", m[1], m[2], m[3], m[0])
	}
	return sb.String()
}

func gapStyle(gap float64) string {
	if gap == 0 {
		return ""
	}
	return fmt.Sprintf("gap:%.4gpt;", gap)
}

func flexStyle(width any) string {
	switch w := width.(type) {
	case string:
		switch w {
		case "*":
			return "flex:1;min-width:0;"
		case "auto":
			return "flex:0 0 auto;"
		default:
			return fmt.Sprintf("flex:0 0 %s;", w)
		}
	case float64:
		return fmt.Sprintf("flex:0 0 %.4gpt;", w)
	case int:
		return fmt.Sprintf("flex:0 0 %dpt;", w)
	default:
		return "flex:1;min-width:0;"
	}
}

func fitStyle(fit []float64) string {
	if len(fit) != 2 {
		return ""
	}
	return fmt.Sprintf("width:%.4gpt;height:%.4gpt;object-fit:contain;", fit[0], fit[1])
}
