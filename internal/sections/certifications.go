package sections

import (
	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// Certifications renders the certifications section: name, issuer, and the
// obtained/expiry dates. Malformed dates pass through as their literal text.
func Certifications(records []types.Certification, tpl types.Template, opts Options) []layout.Node {
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

		dates := certificationDates(rec)
		issuer := textutil.HasVisibleText(rec.Issuer)
		switch {
		case issuer && dates != "":
			fragments = append(fragments, layout.Node{
				Columns: []layout.Node{
					{Text: textutil.CleanText(rec.Issuer), FontSize: opts.Styles.Small.FontSize, Color: p.muted, Width: "*"},
					{Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted, Alignment: "right", Width: "auto"},
				},
				Margin: layout.Margins(0, 1, 0, 0),
			})
		case issuer:
			fragments = append(fragments, layout.Node{
				Text: textutil.CleanText(rec.Issuer), FontSize: opts.Styles.Small.FontSize, Color: p.muted,
				Margin: layout.Margins(0, 1, 0, 0),
			})
		case dates != "":
			fragments = append(fragments, layout.Node{
				Text: dates, FontSize: opts.Styles.Small.FontSize, Color: p.muted,
				Margin: layout.Margins(0, 1, 0, 0),
			})
		}
		out = appendRecord(out, fragments, i == len(records)-1, opts.spacing())
	}
	return out
}

func certificationDates(rec types.Certification) string {
	obtained := textutil.FormatDate(rec.DateObtained)
	expiry := textutil.FormatDate(rec.ExpiryDate)
	switch {
	case obtained != "" && expiry != "":
		return obtained + " - " + expiry
	case obtained != "":
		return obtained
	case expiry != "":
		return "Expires " + expiry
	default:
		return ""
	}
}
