package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-document-engine/internal/types"
)

func TestGroupSkills(t *testing.T) {
	skills := []types.Skill{
		{Name: "Python", Category: "Languages"},
		{Name: "Terraform", Category: "Infrastructure"},
		{Name: "Go", Category: "Languages"},
		{Name: "Negotiation"},
	}

	groups, order := GroupSkills(skills)

	assert.Equal(t, []string{"Languages", "Infrastructure", "Other"}, order)
	require.Len(t, groups["Languages"], 2)
	assert.Equal(t, "Python", groups["Languages"][0].Name)
	assert.Equal(t, "Go", groups["Languages"][1].Name)
	assert.Equal(t, "Negotiation", groups["Other"][0].Name)
}

func TestGroupSkills_Empty(t *testing.T) {
	groups, order := GroupSkills(nil)
	assert.Empty(t, groups)
	assert.Empty(t, order)
}

func TestLevelPercent(t *testing.T) {
	tests := []struct {
		level string
		want  float64
		ok    bool
	}{
		{level: "Novice", want: 10, ok: true},
		{level: "Beginner", want: 25, ok: true},
		{level: "Intermediate", want: 55, ok: true},
		{level: "Proficient", want: 70, ok: true},
		{level: "Advanced", want: 85, ok: true},
		{level: "Expert", want: 100, ok: true},
		{level: "", want: 0, ok: false},
		{level: "Wizard", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, ok := LevelPercent(tt.level)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
