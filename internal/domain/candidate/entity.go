package candidate

// Candidate is the structured record extracted from one resume. Every field
// is optional: the model omits what the resume does not support, and age may
// be an estimate grounded in education or work history.
type Candidate struct {
	Name   string   `json:"name,omitempty"`
	Email  string   `json:"email,omitempty"`
	Age    int      `json:"age,omitempty"`
	Skills []string `json:"skills,omitempty"`
}

// SkillAssessment grades a single extracted skill against a job position.
// Proficiency is an integer on a 0-10 scale.
type SkillAssessment struct {
	Name        string `json:"name,omitempty"`
	Relevance   string `json:"relevance,omitempty"`
	Reasoning   string `json:"reasoning,omitempty"`
	Proficiency int    `json:"proficiency,omitempty"`
}

// JobMatch is the per-position assessment of the candidate's skills.
type JobMatch struct {
	JobName string            `json:"job_name,omitempty"`
	Skills  []SkillAssessment `json:"skills,omitempty"`
}

func (c Candidate) HasSkills() bool {
	for _, s := range c.Skills {
		if s != "" {
			return true
		}
	}
	return false
}

// Assessment returns the entry for the named skill, if present.
func (m JobMatch) Assessment(name string) (SkillAssessment, bool) {
	for _, s := range m.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return SkillAssessment{}, false
}
