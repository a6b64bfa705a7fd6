package dto

type CandidateResponse struct {
	Name   string   `json:"name,omitempty"`
	Email  string   `json:"email,omitempty"`
	Age    int      `json:"age,omitempty"`
	Skills []string `json:"skills"`
}

type InsightsResponse struct {
	SessionID    string            `json:"session_id"`
	SessionToken string            `json:"session_token"`
	Candidate    CandidateResponse `json:"candidate"`
}
