package dto

// RecommendRequest is the public /recommend body. Wire format is fixed:
// {"question": "..."} in, {"answer": "..."} out.
type RecommendRequest struct {
	Question string `json:"question" validate:"required"`
}

type RecommendResponse struct {
	Answer string `json:"answer"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
