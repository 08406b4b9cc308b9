package mapper

import (
	"encoding/json"
	"time"

	"assessment-advisor-be/internal/entity"
	"assessment-advisor-be/internal/model"

	"gorm.io/datatypes"
)

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) ToEntity(a *model.Assessment) *entity.Assessment {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	var testTypes []string
	if len(a.TestTypes) > 0 {
		// Malformed JSON leaves test types empty rather than failing the read.
		_ = json.Unmarshal(a.TestTypes, &testTypes)
	}

	return &entity.Assessment{
		Id:              a.Id,
		Slug:            a.Slug,
		Name:            a.Name,
		URL:             a.URL,
		Description:     a.Description,
		DurationMinutes: a.DurationMinutes,
		RemoteTesting:   a.RemoteTesting,
		AdaptiveSupport: a.AdaptiveSupport,
		TestTypes:       testTypes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}

func (m *AssessmentMapper) ToModel(a *entity.Assessment) *model.Assessment {
	if a == nil {
		return nil
	}

	testTypes := datatypes.JSON("[]")
	if a.TestTypes != nil {
		if b, err := json.Marshal(a.TestTypes); err == nil {
			testTypes = b
		}
	}

	mdl := &model.Assessment{
		Id:              a.Id,
		Slug:            a.Slug,
		Name:            a.Name,
		URL:             a.URL,
		Description:     a.Description,
		DurationMinutes: a.DurationMinutes,
		RemoteTesting:   a.RemoteTesting,
		AdaptiveSupport: a.AdaptiveSupport,
		TestTypes:       testTypes,
		CreatedAt:       a.CreatedAt,
	}
	if a.UpdatedAt != nil {
		mdl.UpdatedAt = *a.UpdatedAt
	}
	return mdl
}
