package templates

import (
	"github.com/jonathan/cv-document-engine/internal/sections"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// structured is a dense single-column design. Skill categories appear early
// as an "Areas of Expertise" tile grid and again later as the full grouped
// list with levels; that duplication is the template's design, not an
// accident. Job entries carry a filled header block.
var structured = Descriptor{
	ID:   "structured",
	Name: "Structured",
	Palette: types.Template{
		ID: "structured",
		Colors: map[string]string{
			types.ColorHeader:  "#1e3a5f",
			types.ColorBody:    "#2b3a4a",
			types.ColorAccent:  "#2e6da4",
			types.ColorMuted:   "#6e7b8a",
			types.ColorDivider: "#d7dde4",
			types.ColorLink:    "#2e6da4",
			types.ColorSkillBg: "#eef2f6",
		},
	},
	Preset:      "technical",
	Font:        "Helvetica",
	HeaderStyle: "boldBar",
	PageLayout:  PageSingle,
	Branding:    BrandingAlways,
	Main: []Section{
		{Kind: KindSummary, Key: types.SectionSummary, Title: "Professional Summary"},
		{Kind: KindExpertiseGrid, Key: types.SectionSkills, Title: "Areas of Expertise"},
		{Kind: KindCareerHighlights, Key: types.SectionSummary, Title: "Career Highlights"},
		{Kind: KindExperience, Key: types.SectionExperience, Title: "Career History", Layout: sections.LayoutStructured},
		{Kind: KindEducation, Key: types.SectionEducation, Title: "Education"},
		{Kind: KindCertifications, Key: types.SectionCertifications, Title: "Certifications"},
		{Kind: KindSkills, Key: types.SectionSkills, Title: "Skills", SkillLayout: sections.SkillsList, ShowLevels: true},
		{Kind: KindQualifications, Key: types.SectionQualifications, Title: "Qualification Equivalence"},
		{Kind: KindMemberships, Key: types.SectionMemberships, Title: "Professional Memberships"},
		{Kind: KindInterests, Key: types.SectionInterests, Title: "Interests"},
	},
}
