package textutil

import "github.com/jonathan/cv-document-engine/internal/types"

// DefaultSkillCategory is used when a skill has no category of its own.
const DefaultSkillCategory = "Other"

// levelPercent maps the closed proficiency scale to visual fill-bar widths.
var levelPercent = map[string]float64{
	"Novice":       10,
	"Beginner":     25,
	"Intermediate": 55,
	"Proficient":   70,
	"Advanced":     85,
	"Expert":       100,
}

// LevelPercent returns the fill-bar percentage for a proficiency level.
// Unknown or empty levels report ok=false and render without a bar.
func LevelPercent(level string) (float64, bool) {
	p, ok := levelPercent[level]
	return p, ok
}

// GroupSkills groups skills by category, defaulting to "Other". The returned
// category list preserves first-appearance order and skills keep their
// original relative order within each group.
func GroupSkills(skills []types.Skill) (map[string][]types.Skill, []string) {
	groups := make(map[string][]types.Skill)
	order := []string{}
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = DefaultSkillCategory
		}
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], s)
	}
	return groups, order
}
