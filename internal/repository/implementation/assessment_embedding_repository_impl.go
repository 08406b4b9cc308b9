package implementation

import (
	"context"

	"assessment-advisor-be/internal/entity"
	"assessment-advisor-be/internal/mapper"
	"assessment-advisor-be/internal/model"
	"assessment-advisor-be/internal/repository/contract"
	"assessment-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type AssessmentEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentEmbeddingMapper
}

func NewAssessmentEmbeddingRepository(db *gorm.DB) contract.AssessmentEmbeddingRepository {
	return &AssessmentEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentEmbeddingMapper(),
	}
}

func (r *AssessmentEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AssessmentEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.AssessmentEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *AssessmentEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.AssessmentEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.AssessmentEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *AssessmentEmbeddingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AssessmentEmbedding{}, id).Error
}

func (r *AssessmentEmbeddingRepositoryImpl) DeleteByAssessmentId(ctx context.Context, assessmentId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("assessment_id = ?", assessmentId).Delete(&model.AssessmentEmbedding{}).Error
}

// DeleteAllUnscoped hard-deletes every embedding row. Used by full rebuilds.
func (r *AssessmentEmbeddingRepositoryImpl) DeleteAllUnscoped(ctx context.Context) error {
	return r.db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&model.AssessmentEmbedding{}).Error
}

func (r *AssessmentEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AssessmentEmbedding, error) {
	var models []*model.AssessmentEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AssessmentEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *AssessmentEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.AssessmentEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns embeddings with cosine similarity scores,
// filtered by threshold. pgvector's <=> operator is cosine distance, so
// similarity = 1 - distance. Soft-deleted embeddings and assessments are
// excluded.
func (r *AssessmentEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredAssessmentEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.AssessmentEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("assessment_embeddings").
		Select("assessment_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN assessments ON assessments.id = assessment_embeddings.assessment_id").
		Where("assessment_embeddings.deleted_at IS NULL").
		Where("assessments.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredAssessmentEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredAssessmentEmbedding{
			Embedding:  r.mapper.ToEntity(&res.AssessmentEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
