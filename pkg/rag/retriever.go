package rag

import (
	"context"
	"fmt"
	"log"

	"assessment-advisor-be/internal/constant"
	"assessment-advisor-be/internal/repository/contract"
	"assessment-advisor-be/internal/repository/specification"
	"assessment-advisor-be/internal/repository/unitofwork"
	"assessment-advisor-be/pkg/embedding"
	"assessment-advisor-be/pkg/store"

	"github.com/google/uuid"
)

// Retriever handles vector search and candidate filtering.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	logger            *log.Logger
}

func NewRetriever(embeddingProvider embedding.EmbeddingProvider, logger *log.Logger) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		logger:            logger,
	}
}

// RetrievalConfig encapsulates search parameters.
type RetrievalConfig struct {
	DBThreshold    float64
	LogicThreshold float64
	TopK           int
}

func DefaultRetrievalConfig() RetrievalConfig {
	return RetrievalConfig{
		DBThreshold:    0.0,
		LogicThreshold: 0.30,
		TopK:           10,
	}
}

// Execute embeds the query, runs the vector search and returns deduplicated,
// hydrated candidates ordered by similarity.
func (r *Retriever) Execute(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	query string,
	config RetrievalConfig,
) ([]store.Document, error) {

	embeddingRes, err := r.embeddingProvider.Generate(query, constant.EmbeddingTaskQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	scoredResults, err := uow.AssessmentEmbeddingRepository().SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		config.TopK,
		config.DBThreshold,
	)
	if err != nil {
		r.logger.Printf("[ERROR] Vector search failed: %v", err)
		return nil, err
	}

	r.logger.Printf("[DEBUG] Raw search results: %d chunks", len(scoredResults))

	candidates := r.filterAndDeduplicate(scoredResults, config.LogicThreshold)

	r.logger.Printf("[DEBUG] Filtered candidates: %d assessments", len(candidates))

	if err := r.hydrate(ctx, uow, candidates); err != nil {
		r.logger.Printf("[WARN] Failed to hydrate candidates: %v", err)
	}

	return candidates, nil
}

// filterAndDeduplicate keeps the best chunk per assessment above the logic
// threshold. Results arrive ordered by similarity, so the first chunk seen
// for an assessment is its best one.
func (r *Retriever) filterAndDeduplicate(
	results []*contract.ScoredAssessmentEmbedding,
	threshold float64,
) []store.Document {

	var candidates []store.Document
	seen := make(map[uuid.UUID]bool)

	for i, res := range results {
		if res.Similarity < threshold {
			r.logger.Printf("[DEBUG] Candidate %d: Score=%.4f [FILTERED]", i+1, res.Similarity)
			continue
		}

		assessmentId := res.Embedding.AssessmentId
		if seen[assessmentId] {
			continue
		}

		candidates = append(candidates, store.Document{
			AssessmentId: assessmentId,
			Content:      res.Embedding.Document,
			Score:        float32(res.Similarity),
		})
		seen[assessmentId] = true

		r.logger.Printf("[DEBUG] Candidate %d: Score=%.4f [KEEP]", i+1, res.Similarity)
	}

	return candidates
}

// hydrate fills in catalog fields for the surviving candidates.
func (r *Retriever) hydrate(ctx context.Context, uow unitofwork.UnitOfWork, candidates []store.Document) error {
	for i := range candidates {
		assessment, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: candidates[i].AssessmentId})
		if err != nil {
			return err
		}
		if assessment == nil {
			continue
		}
		candidates[i].Name = assessment.Name
		candidates[i].URL = assessment.URL
		candidates[i].DurationMinutes = assessment.DurationMinutes
		candidates[i].RemoteTesting = assessment.RemoteTesting
		candidates[i].AdaptiveSupport = assessment.AdaptiveSupport
		candidates[i].TestTypes = assessment.TestTypes
	}
	return nil
}
