package templates

import (
	"github.com/jonathan/cv-document-engine/internal/sections"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// academic is a formal single-column design: centered header, ruled section
// titles, entity-and-date rows in the record bodies.
var academic = Descriptor{
	ID:   "academic",
	Name: "Academic",
	Palette: types.Template{
		ID: "academic",
		Colors: map[string]string{
			types.ColorHeader:  "#1a202c",
			types.ColorBody:    "#2d3748",
			types.ColorAccent:  "#1f4e79",
			types.ColorMuted:   "#718096",
			types.ColorDivider: "#cbd5e0",
			types.ColorLink:    "#1f4e79",
		},
	},
	Preset:      "conservative",
	Font:        "Georgia",
	HeaderStyle: "academic",
	PageLayout:  PageSingle,
	Branding:    BrandingGated,
	Main: []Section{
		{Kind: KindSummary, Key: types.SectionSummary, Title: "Profile"},
		{Kind: KindExperience, Key: types.SectionExperience, Title: "Professional Experience", Layout: sections.LayoutAcademic},
		{Kind: KindEducation, Key: types.SectionEducation, Title: "Education", Layout: sections.LayoutAcademic},
		{Kind: KindQualifications, Key: types.SectionQualifications, Title: "Qualification Equivalence"},
		{Kind: KindProjects, Key: types.SectionProjects, Title: "Projects"},
		{Kind: KindCertifications, Key: types.SectionCertifications, Title: "Certifications"},
		{Kind: KindMemberships, Key: types.SectionMemberships, Title: "Professional Memberships"},
		{Kind: KindSkills, Key: types.SectionSkills, Title: "Skills", SkillLayout: sections.SkillsList, ShowLevels: true},
		{Kind: KindInterests, Key: types.SectionInterests, Title: "Interests"},
	},
}
