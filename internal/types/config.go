package types

// Section keys recognized by the rendering configuration. Templates render a
// fixed subset of these in their own declaration order.
const (
	SectionProfile        = "profile"
	SectionSummary        = "professionalSummary"
	SectionExperience     = "workExperience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionQualifications = "qualificationEquivalence"
	SectionMemberships    = "memberships"
	SectionInterests      = "interests"
)

// SectionKeys lists every recognized section key.
var SectionKeys = []string{
	SectionProfile,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionQualifications,
	SectionMemberships,
	SectionInterests,
}

// RenderConfig is the caller-supplied rendering configuration.
// Sections is a partial map: a key that is absent defaults to visible, only an
// explicit false hides a section.
type RenderConfig struct {
	Sections             map[string]bool `json:"sections,omitempty"`
	IncludePhoto         bool            `json:"includePhoto,omitempty"`
	IncludeQRCode        bool            `json:"includeQRCode,omitempty"`
	Customization        Customization   `json:"customization,omitempty"`
	SiteURL              string          `json:"siteUrl,omitempty" validate:"omitempty,url"`
	ShowFreePlanBranding bool            `json:"showFreePlanBranding,omitempty"`
}

// SectionVisible reports whether a section key is visible under the
// default-included semantics.
func (c RenderConfig) SectionVisible(key string) bool {
	if c.Sections == nil {
		return true
	}
	v, ok := c.Sections[key]
	return !ok || v
}

// Customization carries per-user overrides applied on top of a template's
// defaults. Colors is a partial map merged key-by-key over the template
// palette; FontSize scales every preset font size.
type Customization struct {
	Colors   map[string]string `json:"colors,omitempty"`
	FontSize string            `json:"fontSize,omitempty" validate:"omitempty,oneof=small medium large"`
	Spacing  string            `json:"spacing,omitempty" validate:"omitempty,oneof=compact normal spacious"`
}
