package implementation

import (
	"context"
	"errors"

	"assessment-advisor-be/internal/entity"
	"assessment-advisor-be/internal/mapper"
	"assessment-advisor-be/internal/model"
	"assessment-advisor-be/internal/repository/contract"
	"assessment-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewAssessmentRepository(db *gorm.DB) contract.AssessmentRepository {
	return &AssessmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

func (r *AssessmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AssessmentRepositoryImpl) Create(ctx context.Context, assessment *entity.Assessment) error {
	m := r.mapper.ToModel(assessment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*assessment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AssessmentRepositoryImpl) Update(ctx context.Context, assessment *entity.Assessment) error {
	m := r.mapper.ToModel(assessment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*assessment = *r.mapper.ToEntity(m)
	return nil
}

// Upsert inserts by slug or refreshes the catalog fields of an existing row.
func (r *AssessmentRepositoryImpl) Upsert(ctx context.Context, assessment *entity.Assessment) error {
	m := r.mapper.ToModel(assessment)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "url", "description", "duration_minutes",
			"remote_testing", "adaptive_support", "test_types", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	// The conflict path keeps the existing primary key, so read it back.
	var persisted model.Assessment
	if err := r.db.WithContext(ctx).Where("slug = ?", m.Slug).First(&persisted).Error; err != nil {
		return err
	}
	*assessment = *r.mapper.ToEntity(&persisted)
	return nil
}

func (r *AssessmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Assessment{}, id).Error
}

func (r *AssessmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error) {
	var m model.Assessment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AssessmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error) {
	var models []*model.Assessment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Assessment, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *AssessmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Assessment{}).Count(&count).Error
	return count, err
}
