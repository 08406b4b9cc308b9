package unitofwork

import (
	"context"

	"assessment-advisor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AssessmentRepository() contract.AssessmentRepository
	AssessmentEmbeddingRepository() contract.AssessmentEmbeddingRepository
}
