// Package render turns a CV data graph plus rendering configuration into the
// two output forms: a paginated document description for the external PDF
// engine and a self-contained HTML preview. Both renderers walk the same
// template descriptor and consume the same section-builder outputs, which is
// what keeps print and preview visually equivalent.
package render

import (
	"strings"

	"github.com/jonathan/cv-document-engine/internal/headers"
	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/sections"
	"github.com/jonathan/cv-document-engine/internal/styles"
	"github.com/jonathan/cv-document-engine/internal/templates"
	"github.com/jonathan/cv-document-engine/internal/textutil"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// DefaultSiteURL is the attribution link used when the configuration names no
// site of its own.
const DefaultSiteURL = "https://cvbuilder.io"

// Request is the full input of one render call. CV and Profile may be nil;
// every missing piece suppresses output rather than erroring.
type Request struct {
	CV      *types.CVData
	Profile *types.Profile
	Config  types.RenderConfig
	CVURL   string
	// QRCodeImage is a precomputed QR bitmap (data URI). The print renderer
	// generates QR inline from CVURL and ignores it; the HTML preview uses it
	// when present.
	QRCodeImage string
	TemplateID  string
}

// resolved is the per-call state both renderers share: descriptor, merged
// palette, document configuration and the fully-populated visibility map.
type resolved struct {
	desc    templates.Descriptor
	palette types.Template
	doc     styles.DocumentConfig

	visible      map[string]bool
	includePhoto bool
	includeQR    bool
	cvURL        string
	qrImage      string
	siteURL      string
	branding     bool

	cv      *types.CVData
	profile *types.Profile
}

// resolveRequest normalizes a request once: defaults applied, customization
// merged, section visibility expanded over every known key.
func resolveRequest(req Request) *resolved {
	cv := req.CV
	if cv == nil {
		cv = &types.CVData{}
	}
	profile := req.Profile
	if profile == nil {
		profile = &types.Profile{}
	}
	cfg := req.Config

	desc := templates.Resolve(req.TemplateID)
	palette := textutil.MergeCustomization(desc.Palette, cfg.Customization)

	visible := make(map[string]bool, len(types.SectionKeys))
	for _, key := range types.SectionKeys {
		visible[key] = cfg.SectionVisible(key)
	}

	includeQR := cfg.IncludeQRCode && req.CVURL != ""
	// QR replaces photo: the photo is never rendered alongside a QR code.
	includePhoto := cfg.IncludePhoto && profile.Photo != "" && !includeQR

	siteURL := cfg.SiteURL
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}

	return &resolved{
		desc:         desc,
		palette:      palette,
		doc:          styles.BuildDocumentConfig(palette, desc.Preset, cfg.Customization, desc.Font),
		visible:      visible,
		includePhoto: includePhoto,
		includeQR:    includeQR,
		cvURL:        req.CVURL,
		qrImage:      req.QRCodeImage,
		siteURL:      siteURL,
		branding:     desc.Branding == templates.BrandingAlways || cfg.ShowFreePlanBranding,
		cv:           cv,
		profile:      profile,
	}
}

func (r *resolved) contentWidth() float64 {
	return layout.PageWidthA4 - r.doc.PageMargins[0] - r.doc.PageMargins[2]
}

func (r *resolved) ownerName() string {
	return strings.TrimSpace(textutil.CleanText(r.profile.FullName))
}

// sectionContent dispatches one descriptor slot to its builder. An empty
// result means the whole section, header included, is suppressed.
func (r *resolved) sectionContent(sec templates.Section) []layout.Node {
	opts := sections.Options{
		Layout:      sec.Layout,
		Styles:      r.doc.Styles,
		SkillLayout: sec.SkillLayout,
		GridColumns: sec.GridColumns,
		ShowLevels:  sec.ShowLevels,
	}
	switch sec.Kind {
	case templates.KindSummary:
		return sections.Summary(r.cv.ProfessionalSummary, r.palette, opts)
	case templates.KindExperience:
		return sections.Experience(r.cv.WorkExperience, r.palette, opts)
	case templates.KindEducation:
		return sections.Education(r.cv.Education, r.palette, opts)
	case templates.KindSkills:
		return sections.Skills(r.cv.Skills, r.palette, opts)
	case templates.KindSkillBars:
		return sections.SkillBars(r.cv.Skills, r.palette, opts)
	case templates.KindProjects:
		return sections.Projects(r.cv.Projects, r.palette, opts)
	case templates.KindCertifications:
		return sections.Certifications(r.cv.Certifications, r.palette, opts)
	case templates.KindMemberships:
		return sections.Memberships(r.cv.Memberships, r.palette, opts)
	case templates.KindInterests:
		return sections.Interests(r.cv.Interests, r.palette, opts)
	case templates.KindQualifications:
		return sections.Qualifications(r.cv.Qualifications, r.palette, opts)
	case templates.KindExpertiseGrid:
		return sections.ExpertiseGrid(r.cv.Skills, r.palette, opts)
	case templates.KindCareerHighlights:
		return sections.CareerHighlights(r.cv.ProfessionalSummary, r.palette, opts)
	case templates.KindContact:
		return r.contactNodes()
	default:
		return nil
	}
}

// contactNodes synthesizes the sidebar contact block from the profile.
func (r *resolved) contactNodes() []layout.Node {
	p := r.doc.Styles
	muted := textutil.GetColor(r.palette, types.ColorMuted, "#6b7280")
	link := textutil.GetColor(r.palette, types.ColorLink, muted)

	var out []layout.Node
	add := func(n layout.Node) {
		n.Margin = layout.MarginBottom(3)
		out = append(out, n)
	}
	if textutil.HasVisibleText(r.profile.Email) {
		add(layout.Node{Text: textutil.CleanText(r.profile.Email), FontSize: p.Small.FontSize, Color: muted})
	}
	if textutil.HasVisibleText(r.profile.Phone) {
		add(layout.Node{Text: textutil.CleanText(r.profile.Phone), FontSize: p.Small.FontSize, Color: muted})
	}
	if textutil.HasVisibleText(r.profile.Location) {
		add(layout.Node{Text: textutil.CleanText(r.profile.Location), FontSize: p.Small.FontSize, Color: muted})
	}
	if textutil.HasVisibleText(r.profile.LinkedInURL) {
		add(layout.Node{Text: r.profile.LinkedInURL, Link: r.profile.LinkedInURL, FontSize: p.Small.FontSize, Color: link})
	}
	if len(out) > 0 {
		out[len(out)-1].Margin = nil
	}
	return out
}

// columnContent renders an ordered section list, honoring visibility and
// suppression, with headers only over non-empty content.
func (r *resolved) columnContent(secs []templates.Section, width float64) []layout.Node {
	var out []layout.Node
	for _, sec := range secs {
		if !r.visible[sec.Key] {
			continue
		}
		content := r.sectionContent(sec)
		if len(content) == 0 {
			continue
		}
		var block []layout.Node
		if sec.Title != "" {
			style := sec.HeaderStyle
			if style == "" {
				style = r.desc.HeaderStyle
			}
			block = append(block, headers.For(style)(sec.Title, r.palette, headers.Options{
				FontSize: r.doc.Styles.Subheader.FontSize,
				Width:    width,
			})...)
		}
		block = append(block, content...)

		section := layout.Stack(block...)
		section.Margin = layout.MarginBottom(r.doc.SectionSpacing)
		out = append(out, section)
	}
	if len(out) > 0 {
		out[len(out)-1].Margin = nil
	}
	return out
}
