package types

import "encoding/json"

// CVData is the normalized CV data graph. Every collection is independently
// optional; builders treat nil and empty slices identically.
type CVData struct {
	ProfessionalSummary *ProfessionalSummary       `json:"professional_summary,omitempty"`
	WorkExperience      []WorkExperience           `json:"work_experience,omitempty"`
	Education           []Education                `json:"education,omitempty"`
	Skills              []Skill                    `json:"skills,omitempty"`
	Projects            []Project                  `json:"projects,omitempty"`
	Certifications      []Certification            `json:"certifications,omitempty"`
	Memberships         []Membership               `json:"professional_memberships,omitempty"`
	Interests           []Interest                 `json:"interests,omitempty"`
	Qualifications      []QualificationEquivalence `json:"qualification_equivalence,omitempty"`
}

// UnmarshalJSON tolerates the "memberships" key some producers emit instead of
// "professional_memberships". When both appear, "professional_memberships" wins.
func (c *CVData) UnmarshalJSON(data []byte) error {
	type alias CVData
	aux := struct {
		*alias
		LegacyMemberships []Membership `json:"memberships,omitempty"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(c.Memberships) == 0 && len(aux.LegacyMemberships) > 0 {
		c.Memberships = aux.LegacyMemberships
	}
	return nil
}

// ProfessionalSummary is an optional free-text summary plus a ranked list of strengths.
type ProfessionalSummary struct {
	Description string     `json:"description,omitempty"`
	Strengths   []Strength `json:"strengths,omitempty"`
}

// Strength is one short strength statement with a sort position.
type Strength struct {
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// WorkExperience is a single employment record. An empty EndDate means the
// position is current and renders as "Present".
type WorkExperience struct {
	CompanyName              string                   `json:"company_name,omitempty"`
	Position                 string                   `json:"position,omitempty"`
	StartDate                string                   `json:"start_date,omitempty"`
	EndDate                  string                   `json:"end_date,omitempty"`
	HideDate                 bool                     `json:"hide_date,omitempty"`
	Description              string                   `json:"description,omitempty"`
	ResponsibilityCategories []ResponsibilityCategory `json:"responsibility_categories,omitempty"`
}

// ResponsibilityCategory groups bullet items under a named label.
type ResponsibilityCategory struct {
	Name  string   `json:"name,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Education is a single study record.
type Education struct {
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Skill is a named skill with an optional category and proficiency level.
// Category defaults to "Other" when grouping; Level is one of the closed
// ordered set Novice < Beginner < Intermediate < Proficient < Advanced < Expert.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    string `json:"level,omitempty"`
}

// Project is a personal or professional project record.
type Project struct {
	Title       string `json:"title,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Certification is an earned certification record.
type Certification struct {
	Name         string `json:"name,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	DateObtained string `json:"date_obtained,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
}

// Membership is a professional body membership record.
type Membership struct {
	Organisation string `json:"organisation,omitempty"`
	Role         string `json:"role,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// Interest is a named interest with an optional description.
type Interest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// QualificationEquivalence describes a qualification level mapping with
// supporting evidence statements.
type QualificationEquivalence struct {
	Level       string   `json:"level,omitempty"`
	LevelName   string   `json:"level_name,omitempty"`
	Description string   `json:"description,omitempty"`
	Evidence    []string `json:"supporting_evidence,omitempty"`
}

// UnmarshalJSON tolerates the "evidence" key some producers emit instead of
// "supporting_evidence". When both appear, "supporting_evidence" wins.
func (q *QualificationEquivalence) UnmarshalJSON(data []byte) error {
	type alias QualificationEquivalence
	aux := struct {
		*alias
		LegacyEvidence []string `json:"evidence,omitempty"`
	}{alias: (*alias)(q)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(q.Evidence) == 0 && len(aux.LegacyEvidence) > 0 {
		q.Evidence = aux.LegacyEvidence
	}
	return nil
}

// DisplayLevel returns the human-readable level label, preferring the
// explicit level_name over the raw level code.
func (q *QualificationEquivalence) DisplayLevel() string {
	if q.LevelName != "" {
		return q.LevelName
	}
	return q.Level
}
