// Package layout defines the paginated document description consumed by the
// external PDF rendering engine: a tree of nodes (text, stacks, columns,
// tables, images, canvas primitives) plus document-level configuration.
package layout

// Node is one unit of print layout. Exactly one content field (Text, Stack,
// Columns, UL, Table, Canvas, Image or QR) is normally set; the styling
// fields apply to whichever content the node carries. Zero-valued fields are
// omitted from the serialized form, which the engine reads as its defaults.
type Node struct {
	Text    string      `json:"text,omitempty"`
	Spans   []Node      `json:"spans,omitempty"` // inline runs concatenated by the engine
	Stack   []Node      `json:"stack,omitempty"`
	Columns []Node      `json:"columns,omitempty"`
	UL      []Node      `json:"ul,omitempty"`
	Table   *Table      `json:"table,omitempty"`
	Canvas  []Primitive `json:"canvas,omitempty"`
	Image   string      `json:"image,omitempty"`
	QR      string      `json:"qr,omitempty"`

	FontSize   float64     `json:"fontSize,omitempty"`
	Font       string      `json:"font,omitempty"`
	Bold       bool        `json:"bold,omitempty"`
	Italics    bool        `json:"italics,omitempty"`
	Color      string      `json:"color,omitempty"`
	FillColor  string      `json:"fillColor,omitempty"`
	Decoration string      `json:"decoration,omitempty"`
	Alignment  string      `json:"alignment,omitempty"`
	LineHeight float64     `json:"lineHeight,omitempty"`
	Margin     *[4]float64 `json:"margin,omitempty"` // left, top, right, bottom

	// Width applies inside a columns node: a number (points), a percentage
	// string such as "30%", "*" for remaining space, or "auto".
	Width     any     `json:"width,omitempty"`
	ColumnGap float64 `json:"columnGap,omitempty"`

	// TableLayout names an engine-side table layout, e.g. "noBorders".
	TableLayout string `json:"layout,omitempty"`

	Link string    `json:"link,omitempty"`
	Fit  []float64 `json:"fit,omitempty"` // image/QR bounding box
}

// Table is a grid of cells with per-column width hints.
type Table struct {
	Widths []any    `json:"widths,omitempty"`
	Body   [][]Node `json:"body"`
}

// Primitive is a vector drawing instruction inside a canvas node.
// Coordinate fields that are absent in the serialized form read as zero.
type Primitive struct {
	Type      string  `json:"type"` // "line" or "rect"
	X1        float64 `json:"x1,omitempty"`
	Y1        float64 `json:"y1,omitempty"`
	X2        float64 `json:"x2,omitempty"`
	Y2        float64 `json:"y2,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	W         float64 `json:"w,omitempty"`
	H         float64 `json:"h,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
	LineColor string  `json:"lineColor,omitempty"`
	Color     string  `json:"color,omitempty"` // fill color for rects
}

// Text returns a plain text node.
func Text(s string) Node {
	return Node{Text: s}
}

// Stack wraps nodes in a vertical stack.
func Stack(children ...Node) Node {
	return Node{Stack: children}
}

// HLine returns a full-width horizontal rule drawn with a canvas line.
func HLine(width, thickness float64, color string) Node {
	return Node{
		Canvas: []Primitive{{
			Type:      "line",
			X2:        width,
			LineWidth: thickness,
			LineColor: color,
		}},
	}
}

// FilledRect returns a canvas node with a single filled rectangle.
func FilledRect(w, h float64, color string) Node {
	return Node{
		Canvas: []Primitive{{Type: "rect", W: w, H: h, Color: color}},
	}
}

// MarginBottom is a convenience for the common bottom-spacing case.
func MarginBottom(v float64) *[4]float64 {
	return &[4]float64{0, 0, 0, v}
}

// Margins builds a full margin box.
func Margins(left, top, right, bottom float64) *[4]float64 {
	return &[4]float64{left, top, right, bottom}
}
