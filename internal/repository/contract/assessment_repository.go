package contract

import (
	"context"

	"assessment-advisor-be/internal/entity"
	"assessment-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entity.Assessment) error
	Update(ctx context.Context, assessment *entity.Assessment) error
	Upsert(ctx context.Context, assessment *entity.Assessment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
