package templates

import (
	"github.com/jonathan/cv-document-engine/internal/types"
)

// modern is a two-column design: a 30% sidebar with contact, proficiency
// bars, education, certifications and interests, and a 70% main column with
// summary, experience, projects and memberships.
var modern = Descriptor{
	ID:   "modern",
	Name: "Modern",
	Palette: types.Template{
		ID: "modern",
		Colors: map[string]string{
			types.ColorHeader:  "#0f172a",
			types.ColorBody:    "#1e293b",
			types.ColorAccent:  "#0d9488",
			types.ColorMuted:   "#64748b",
			types.ColorDivider: "#e2e8f0",
			types.ColorLink:    "#0d9488",
			types.ColorSkillBg: "#ccfbf1",
		},
	},
	Preset:       "modern",
	Font:         "Helvetica",
	HeaderStyle:  "sideBorder",
	PageLayout:   PageSidebar,
	SidebarWidth: "30%",
	Branding:     BrandingGated,
	Sidebar: []Section{
		{Kind: KindContact, Key: types.SectionProfile, Title: "Contact", HeaderStyle: "minimal"},
		{Kind: KindSkillBars, Key: types.SectionSkills, Title: "Skills", HeaderStyle: "minimal"},
		{Kind: KindEducation, Key: types.SectionEducation, Title: "Education", HeaderStyle: "minimal"},
		{Kind: KindCertifications, Key: types.SectionCertifications, Title: "Certifications", HeaderStyle: "minimal"},
		{Kind: KindInterests, Key: types.SectionInterests, Title: "Interests", HeaderStyle: "minimal"},
	},
	Main: []Section{
		{Kind: KindSummary, Key: types.SectionSummary, Title: "Summary"},
		{Kind: KindExperience, Key: types.SectionExperience, Title: "Experience"},
		{Kind: KindProjects, Key: types.SectionProjects, Title: "Projects"},
		{Kind: KindQualifications, Key: types.SectionQualifications, Title: "Qualification Equivalence"},
		{Kind: KindMemberships, Key: types.SectionMemberships, Title: "Memberships"},
	},
}
