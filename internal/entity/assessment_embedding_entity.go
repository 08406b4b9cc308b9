package entity

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	AssessmentId   uuid.UUID
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
}
