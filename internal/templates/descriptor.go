// Package templates declares the visual templates as data: a palette, a
// preset, a header style and an ordered section list per template. Both
// renderers (print document and HTML preview) consume the same descriptor,
// which is what keeps them visually equivalent.
package templates

import "github.com/jonathan/cv-document-engine/internal/types"

// Section kinds a descriptor can place. Most map one-to-one onto a section
// builder; contact is synthesized from the profile by the renderer.
const (
	KindContact          = "contact"
	KindSummary          = "summary"
	KindExperience       = "experience"
	KindEducation        = "education"
	KindSkills           = "skills"
	KindSkillBars        = "skillBars"
	KindProjects         = "projects"
	KindCertifications   = "certifications"
	KindMemberships      = "memberships"
	KindInterests        = "interests"
	KindQualifications   = "qualifications"
	KindExpertiseGrid    = "expertiseGrid"
	KindCareerHighlights = "careerHighlights"
)

// Page layouts.
const (
	PageSingle  = "single"
	PageSidebar = "sidebar"
)

// Branding modes for the footer attribution line.
const (
	BrandingGated  = "gated"  // shown only when ShowFreePlanBranding is set
	BrandingAlways = "always" // always shown
)

// Section is one slot in a template's fixed declaration order.
type Section struct {
	Kind        string
	Key         string // visibility key in the rendering configuration
	Title       string // header title; empty renders no header
	HeaderStyle string // overrides the descriptor default when set
	Layout      string // record layout passed to the builder
	SkillLayout string
	ShowLevels  bool
	GridColumns int
}

// Descriptor is a complete template definition.
type Descriptor struct {
	ID           string
	Name         string
	Palette      types.Template
	Preset       string
	Font         string
	HeaderStyle  string // default section header style
	PageLayout   string // PageSingle or PageSidebar
	SidebarWidth string // e.g. "30%", sidebar layout only
	Main         []Section
	Sidebar      []Section // sidebar layout only
	Branding     string    // BrandingGated or BrandingAlways
}

// Sections returns every section of the template in render order, sidebar
// first for sidebar layouts.
func (d Descriptor) Sections() []Section {
	if d.PageLayout == PageSidebar {
		out := make([]Section, 0, len(d.Sidebar)+len(d.Main))
		out = append(out, d.Sidebar...)
		return append(out, d.Main...)
	}
	return d.Main
}
