package dto

import "github.com/google/uuid"

// PublishEmbedAssessmentMessage is the payload on the embed topic.
type PublishEmbedAssessmentMessage struct {
	AssessmentId uuid.UUID `json:"assessment_id"`
}

type ReindexResponse struct {
	Accepted int `json:"accepted"`
}

type StatsResponse struct {
	Assessments int64 `json:"assessments"`
	Embeddings  int64 `json:"embeddings"`
}
