package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Assessment struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug            string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name            string         `gorm:"type:varchar(255);not null"`
	URL             string         `gorm:"type:text"`
	Description     string         `gorm:"type:text"`
	DurationMinutes int            `gorm:"default:0"`
	RemoteTesting   bool           `gorm:"default:false"`
	AdaptiveSupport bool           `gorm:"default:false"`
	TestTypes       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Assessment) TableName() string {
	return "assessments"
}
