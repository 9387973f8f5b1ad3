package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/types"
)

func fullRequest(templateID string) Request {
	return Request{
		TemplateID: templateID,
		Profile: &types.Profile{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+44 20 0000 0000",
			Location: "London",
			Bio:      "Engineering leader",
			Photo:    "data:image/png;base64,AAAA",
		},
		CV: &types.CVData{
			ProfessionalSummary: &types.ProfessionalSummary{
				Description: "Fifteen years building platforms",
				Strengths: []types.Strength{
					{Text: "Team building", Position: 1},
					{Text: "Architecture", Position: 2},
				},
			},
			WorkExperience: []types.WorkExperience{{
				CompanyName: "Acme",
				Position:    "Engineer",
				StartDate:   "2020-01-01",
			}},
			Education: []types.Education{{
				Institution: "State University",
				Degree:      "BSc",
				StartDate:   "2010-09-01",
				EndDate:     "2014-06-30",
			}},
			Skills: []types.Skill{
				{Name: "Python", Category: "Languages", Level: "Expert"},
				{Name: "Go", Category: "Languages", Level: "Intermediate"},
			},
			Projects:       []types.Project{{Title: "Side Project", Description: "A tool"}},
			Certifications: []types.Certification{{Name: "Cloud Architect", Issuer: "ExampleCorp", DateObtained: "2021-03-01"}},
			Memberships:    []types.Membership{{Organisation: "IEEE", Role: "Member"}},
			Interests:      []types.Interest{{Name: "Chess"}},
		},
	}
}

func docJSON(t *testing.T, doc *layout.Document) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func TestDocument_FullRender(t *testing.T) {
	doc := Document(fullRequest("classic"))

	assert.Equal(t, "A4", doc.PageSize)
	assert.NotEmpty(t, doc.Content)
	assert.Equal(t, "Jane Doe - CV", doc.Info.Title)
	assert.Equal(t, "Jane Doe", doc.Info.Author)

	out := docJSON(t, doc)
	for _, want := range []string{"Jane Doe", "Acme", "01/2020 - Present", "State University", "Python", "Side Project", "Cloud Architect", "IEEE", "Chess"} {
		assert.Contains(t, out, want)
	}
}

func TestDocument_NilInputsProduceEmptyDocument(t *testing.T) {
	doc := Document(Request{TemplateID: "classic"})
	assert.Empty(t, doc.Content)
	assert.Equal(t, "CV", doc.Info.Title)
}

func TestDocument_UnknownTemplateFallsBack(t *testing.T) {
	doc := Document(Request{TemplateID: "brutalist", Profile: &types.Profile{FullName: "Jane Doe"}})
	assert.NotEmpty(t, doc.Content, "falls back to the classic template")
}

func TestDocument_SectionExcludedByConfig(t *testing.T) {
	req := fullRequest("classic")
	req.Config.Sections = map[string]bool{types.SectionSkills: false}

	out := docJSON(t, Document(req))
	assert.NotContains(t, out, "Python")
	assert.NotContains(t, out, "SKILLS")
	assert.Contains(t, out, "Acme", "other sections still render")
	assert.Contains(t, out, "Side Project")
}

func TestDocument_AbsentSectionKeysDefaultVisible(t *testing.T) {
	req := fullRequest("classic")
	req.Config.Sections = map[string]bool{types.SectionInterests: false}

	out := docJSON(t, Document(req))
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "State University")
	assert.NotContains(t, out, "Chess")
}

func TestDocument_EmptySummarySuppressesHeading(t *testing.T) {
	req := fullRequest("classic")
	req.CV.ProfessionalSummary = &types.ProfessionalSummary{Description: "", Strengths: []types.Strength{}}

	out := docJSON(t, Document(req))
	assert.NotContains(t, out, "PROFESSIONAL SUMMARY")
}

func TestDocument_QRReplacesPhoto(t *testing.T) {
	req := fullRequest("classic")
	req.Config.IncludePhoto = true
	req.Config.IncludeQRCode = true
	req.CVURL = "https://cv.example.com/jane"

	out := docJSON(t, Document(req))
	assert.Contains(t, out, `"qr":"https://cv.example.com/jane"`)
	assert.NotContains(t, out, "data:image/png;base64,AAAA", "photo never rendered alongside the QR code")
}

func TestDocument_PhotoWithoutQR(t *testing.T) {
	req := fullRequest("classic")
	req.Config.IncludePhoto = true

	out := docJSON(t, Document(req))
	assert.Contains(t, out, "data:image/png;base64,AAAA")
	assert.NotContains(t, out, `"qr"`)
}

func TestDocument_NoQRWithoutURL(t *testing.T) {
	req := fullRequest("classic")
	req.Config.IncludeQRCode = true // no CVURL supplied

	out := docJSON(t, Document(req))
	assert.NotContains(t, out, `"qr"`)
}

func TestDocument_CustomAccentColorApplied(t *testing.T) {
	req := fullRequest("classic")
	req.Config.Customization = types.Customization{Colors: map[string]string{"accent": "#ff0000"}}

	out := docJSON(t, Document(req))
	assert.Contains(t, out, "#ff0000")
}

func TestDocument_ModernSidebarLayout(t *testing.T) {
	doc := Document(fullRequest("modern"))
	require.Len(t, doc.Content, 1)
	cols := doc.Content[0].Columns
	require.Len(t, cols, 2)
	assert.Equal(t, "30%", cols[0].Width)
	assert.Equal(t, "*", cols[1].Width)

	sidebar := docJSONNodes(t, cols[0].Stack)
	assert.Contains(t, sidebar, "jane@example.com")
	assert.Contains(t, sidebar, "Python")

	main := docJSONNodes(t, cols[1].Stack)
	assert.Contains(t, main, "Jane Doe")
	assert.Contains(t, main, "Acme")
}

func docJSONNodes(t *testing.T, nodes []layout.Node) string {
	t.Helper()
	data, err := json.Marshal(nodes)
	require.NoError(t, err)
	return string(data)
}

func TestDocument_ProfileHiddenSuppressesHeader(t *testing.T) {
	req := fullRequest("classic")
	req.Config.Sections = map[string]bool{types.SectionProfile: false}

	doc := Document(req)
	out := docJSONNodes(t, doc.Content)
	assert.NotContains(t, out, "jane@example.com")
	assert.NotContains(t, out, "Engineering leader")
	assert.Contains(t, out, "Acme", "body sections are unaffected")
}

func TestFooter_PageNumbersAndBranding(t *testing.T) {
	req := fullRequest("classic")
	req.Config.ShowFreePlanBranding = true
	req.Config.SiteURL = "https://www.cvbuilder.io/app"

	doc := Document(req)
	require.NotNil(t, doc.Footer)

	node := doc.Footer(2, 3)
	require.Len(t, node.Stack, 2)
	assert.Equal(t, "Jane Doe - Page 2 of 3", node.Stack[0].Text)
	assert.Equal(t, "Created free at cvbuilder.io", node.Stack[1].Text)
	assert.Equal(t, "https://www.cvbuilder.io/app", node.Stack[1].Link)
}

func TestFooter_BrandingGatedOff(t *testing.T) {
	doc := Document(fullRequest("classic"))
	node := doc.Footer(1, 1)
	require.Len(t, node.Stack, 1)
	assert.Equal(t, "Jane Doe - Page 1 of 1", node.Stack[0].Text)
}

func TestFooter_StructuredAlwaysBranded(t *testing.T) {
	doc := Document(fullRequest("structured"))
	node := doc.Footer(1, 1)
	require.Len(t, node.Stack, 2)
}

func TestDocument_StructuredSpecialSections(t *testing.T) {
	out := docJSON(t, Document(fullRequest("structured")))
	assert.Contains(t, out, "Areas of Expertise")
	assert.Contains(t, out, "Career Highlights")
	assert.Contains(t, out, "Team building")
	assert.Contains(t, out, "Languages")
}
