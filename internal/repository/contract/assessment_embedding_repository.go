package contract

import (
	"context"

	"assessment-advisor-be/internal/entity"
	"assessment-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredAssessmentEmbedding pairs an embedding row with its cosine similarity
// against the query vector.
type ScoredAssessmentEmbedding struct {
	Embedding  *entity.AssessmentEmbedding
	Similarity float64
}

type AssessmentEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.AssessmentEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.AssessmentEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAssessmentId(ctx context.Context, assessmentId uuid.UUID) error
	DeleteAllUnscoped(ctx context.Context) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AssessmentEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredAssessmentEmbedding, error)
}
