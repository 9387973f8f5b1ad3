package layout

// PageSizeA4 is the only page size the engine is asked for.
const PageSizeA4 = "A4"

// A4 dimensions in PDF points.
const (
	PageWidthA4  = 595.28
	PageHeightA4 = 841.89
)

// DefaultStyle is the document-wide base style the engine applies where a
// node sets nothing of its own.
type DefaultStyle struct {
	Font       string  `json:"font,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	Color      string  `json:"color,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`
}

// Info is document metadata embedded by the engine.
type Info struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Keywords string `json:"keywords,omitempty"`
}

// FooterFunc produces the footer node for one page. The engine calls it once
// per page after pagination, so page counts are known.
type FooterFunc func(currentPage, pageCount int) Node

// Document is the complete paginated document description handed to the
// external PDF engine. Footer is an API-level contract and is not part of the
// serialized form.
type Document struct {
	PageSize     string       `json:"pageSize"`
	PageMargins  [4]float64   `json:"pageMargins"`
	DefaultStyle DefaultStyle `json:"defaultStyle"`
	Content      []Node       `json:"content"`
	Info         Info         `json:"info"`
	Footer       FooterFunc   `json:"-"`
}

// ContentWidth returns the usable width between the left and right margins.
func (d *Document) ContentWidth() float64 {
	return PageWidthA4 - d.PageMargins[0] - d.PageMargins[2]
}
