package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVData_UnmarshalJSON_LegacyMembershipsKey(t *testing.T) {
	raw := `{"memberships": [{"organisation": "IEEE", "role": "Member"}]}`

	var cv CVData
	err := json.Unmarshal([]byte(raw), &cv)
	require.NoError(t, err)

	require.Len(t, cv.Memberships, 1)
	assert.Equal(t, "IEEE", cv.Memberships[0].Organisation)
}

func TestCVData_UnmarshalJSON_CanonicalMembershipsKeyWins(t *testing.T) {
	raw := `{
		"professional_memberships": [{"organisation": "ACM"}],
		"memberships": [{"organisation": "IEEE"}]
	}`

	var cv CVData
	err := json.Unmarshal([]byte(raw), &cv)
	require.NoError(t, err)

	require.Len(t, cv.Memberships, 1)
	assert.Equal(t, "ACM", cv.Memberships[0].Organisation)
}

func TestQualificationEquivalence_UnmarshalJSON_LegacyEvidenceKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "canonical supporting_evidence",
			raw:  `{"level": "7", "supporting_evidence": ["BSc transcript"]}`,
			want: []string{"BSc transcript"},
		},
		{
			name: "legacy evidence",
			raw:  `{"level": "7", "evidence": ["NARIC statement"]}`,
			want: []string{"NARIC statement"},
		},
		{
			name: "canonical wins over legacy",
			raw:  `{"supporting_evidence": ["a"], "evidence": ["b"]}`,
			want: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q QualificationEquivalence
			err := json.Unmarshal([]byte(tt.raw), &q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Evidence)
		})
	}
}

func TestQualificationEquivalence_DisplayLevel(t *testing.T) {
	q := QualificationEquivalence{Level: "7"}
	assert.Equal(t, "7", q.DisplayLevel())

	q.LevelName = "Level 7 (Masters)"
	assert.Equal(t, "Level 7 (Masters)", q.DisplayLevel())
}

func TestRenderConfig_SectionVisible(t *testing.T) {
	tests := []struct {
		name     string
		sections map[string]bool
		key      string
		want     bool
	}{
		{name: "nil map defaults visible", sections: nil, key: SectionSkills, want: true},
		{name: "absent key defaults visible", sections: map[string]bool{SectionSkills: false}, key: SectionProjects, want: true},
		{name: "explicit false hides", sections: map[string]bool{SectionSkills: false}, key: SectionSkills, want: false},
		{name: "explicit true shows", sections: map[string]bool{SectionSkills: true}, key: SectionSkills, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RenderConfig{Sections: tt.sections}
			assert.Equal(t, tt.want, cfg.SectionVisible(tt.key))
		})
	}
}
