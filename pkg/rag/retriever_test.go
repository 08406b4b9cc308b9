package rag

import (
	"io"
	"log"
	"testing"

	"assessment-advisor-be/internal/entity"
	"assessment-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func scored(assessmentId uuid.UUID, doc string, similarity float64) *contract.ScoredAssessmentEmbedding {
	return &contract.ScoredAssessmentEmbedding{
		Embedding: &entity.AssessmentEmbedding{
			Id:           uuid.New(),
			AssessmentId: assessmentId,
			Document:     doc,
		},
		Similarity: similarity,
	}
}

func TestFilterAndDeduplicate(t *testing.T) {
	r := NewRetriever(nil, log.New(io.Discard, "", 0))

	javaId := uuid.New()
	sqlId := uuid.New()
	opqId := uuid.New()

	// Ordered by similarity, the way the repository returns them.
	results := []*contract.ScoredAssessmentEmbedding{
		scored(javaId, "java chunk 1", 0.82),
		scored(javaId, "java chunk 2", 0.75),
		scored(sqlId, "sql chunk", 0.51),
		scored(opqId, "opq chunk", 0.12), // below threshold
	}

	candidates := r.filterAndDeduplicate(results, 0.30)

	assert.Len(t, candidates, 2)

	// Best chunk per assessment wins; the weaker java chunk is dropped.
	assert.Equal(t, javaId, candidates[0].AssessmentId)
	assert.Equal(t, "java chunk 1", candidates[0].Content)
	assert.InDelta(t, 0.82, float64(candidates[0].Score), 0.001)

	assert.Equal(t, sqlId, candidates[1].AssessmentId)
}

func TestFilterAndDeduplicateAllBelowThreshold(t *testing.T) {
	r := NewRetriever(nil, log.New(io.Discard, "", 0))

	results := []*contract.ScoredAssessmentEmbedding{
		scored(uuid.New(), "weak chunk", 0.05),
		scored(uuid.New(), "weaker chunk", 0.01),
	}

	candidates := r.filterAndDeduplicate(results, 0.30)
	assert.Empty(t, candidates)
}

func TestFilterAndDeduplicateEmptyInput(t *testing.T) {
	r := NewRetriever(nil, log.New(io.Discard, "", 0))
	assert.Empty(t, r.filterAndDeduplicate(nil, 0.30))
}
