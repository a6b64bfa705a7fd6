package dto

type PositionResponse struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}
