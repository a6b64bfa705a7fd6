package dto

type SkillAssessmentResponse struct {
	Name        string `json:"name"`
	Relevance   string `json:"relevance,omitempty"`
	Reasoning   string `json:"reasoning,omitempty"`
	Proficiency int    `json:"proficiency"`
}

type JobMatchResponse struct {
	JobName string                    `json:"job_name"`
	Skills  []SkillAssessmentResponse `json:"skills"`
}
