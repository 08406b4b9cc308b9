package mapper

import (
	"time"

	"assessment-advisor-be/internal/entity"
	"assessment-advisor-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type AssessmentEmbeddingMapper struct{}

func NewAssessmentEmbeddingMapper() *AssessmentEmbeddingMapper {
	return &AssessmentEmbeddingMapper{}
}

func (m *AssessmentEmbeddingMapper) ToEntity(e *model.AssessmentEmbedding) *entity.AssessmentEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.AssessmentEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		AssessmentId:   e.AssessmentId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *AssessmentEmbeddingMapper) ToModel(e *entity.AssessmentEmbedding) *model.AssessmentEmbedding {
	if e == nil {
		return nil
	}

	mdl := &model.AssessmentEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		AssessmentId:   e.AssessmentId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
	if e.UpdatedAt != nil {
		mdl.UpdatedAt = *e.UpdatedAt
	}
	return mdl
}
