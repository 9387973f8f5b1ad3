package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-document-engine/internal/types"
)

func TestResolve_KnownAndUnknown(t *testing.T) {
	for _, id := range IDs() {
		d := Resolve(id)
		assert.Equal(t, id, d.ID)
	}

	fallback := Resolve("no-such-template")
	assert.Equal(t, DefaultID, fallback.ID)
}

func TestGet(t *testing.T) {
	_, ok := Get("modern")
	assert.True(t, ok)
	_, ok = Get("brutalist")
	assert.False(t, ok)
}

func TestDescriptors_PalettesComplete(t *testing.T) {
	required := []string{
		types.ColorHeader, types.ColorBody, types.ColorAccent,
		types.ColorMuted, types.ColorDivider, types.ColorLink,
	}
	for _, id := range IDs() {
		d := Resolve(id)
		for _, role := range required {
			assert.NotEmpty(t, d.Palette.Colors[role], "%s palette missing %s", id, role)
		}
	}
}

func TestDescriptors_SectionKeysRecognized(t *testing.T) {
	known := map[string]bool{}
	for _, k := range types.SectionKeys {
		known[k] = true
	}
	for _, id := range IDs() {
		for _, s := range Resolve(id).Sections() {
			assert.True(t, known[s.Key], "%s section %s has unknown key %q", id, s.Kind, s.Key)
		}
	}
}

func TestModern_SidebarOrder(t *testing.T) {
	d := Resolve("modern")
	require.Equal(t, PageSidebar, d.PageLayout)
	assert.Equal(t, "30%", d.SidebarWidth)

	kinds := make([]string, 0, len(d.Sidebar))
	for _, s := range d.Sidebar {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []string{KindContact, KindSkillBars, KindEducation, KindCertifications, KindInterests}, kinds)

	all := d.Sections()
	assert.Equal(t, KindContact, all[0].Kind, "sidebar renders before main")
}

func TestStructured_SkillsAppearTwice(t *testing.T) {
	d := Resolve("structured")

	var kinds []string
	for _, s := range d.Main {
		kinds = append(kinds, s.Kind)
	}
	assert.Contains(t, kinds, KindExpertiseGrid)
	assert.Contains(t, kinds, KindSkills)

	gridIdx, skillsIdx, certsIdx := -1, -1, -1
	for i, k := range kinds {
		switch k {
		case KindExpertiseGrid:
			gridIdx = i
		case KindSkills:
			skillsIdx = i
		case KindCertifications:
			certsIdx = i
		}
	}
	assert.Less(t, gridIdx, certsIdx, "expertise grid comes early")
	assert.Greater(t, skillsIdx, certsIdx, "full skill list comes after certifications")
}
