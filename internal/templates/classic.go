package templates

import (
	"github.com/jonathan/cv-document-engine/internal/sections"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// classic is a restrained single-column design with centered uppercase
// section titles over full-width rules.
var classic = Descriptor{
	ID:   "classic",
	Name: "Classic",
	Palette: types.Template{
		ID: "classic",
		Colors: map[string]string{
			types.ColorHeader:  "#111827",
			types.ColorBody:    "#1f2937",
			types.ColorAccent:  "#374151",
			types.ColorMuted:   "#6b7280",
			types.ColorDivider: "#9ca3af",
			types.ColorLink:    "#2563eb",
		},
	},
	Preset:      "conservative",
	Font:        "Helvetica",
	HeaderStyle: "classic",
	PageLayout:  PageSingle,
	Branding:    BrandingGated,
	Main: []Section{
		{Kind: KindSummary, Key: types.SectionSummary, Title: "Professional Summary"},
		{Kind: KindExperience, Key: types.SectionExperience, Title: "Work Experience"},
		{Kind: KindEducation, Key: types.SectionEducation, Title: "Education"},
		{Kind: KindSkills, Key: types.SectionSkills, Title: "Skills", SkillLayout: sections.SkillsList},
		{Kind: KindProjects, Key: types.SectionProjects, Title: "Projects"},
		{Kind: KindCertifications, Key: types.SectionCertifications, Title: "Certifications"},
		{Kind: KindQualifications, Key: types.SectionQualifications, Title: "Qualification Equivalence"},
		{Kind: KindMemberships, Key: types.SectionMemberships, Title: "Professional Memberships"},
		{Kind: KindInterests, Key: types.SectionInterests, Title: "Interests"},
	},
}
