package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assessment is one catalog entry the advisor can recommend.
type Assessment struct {
	Id              uuid.UUID
	Slug            string
	Name            string
	URL             string
	Description     string
	DurationMinutes int
	RemoteTesting   bool
	AdaptiveSupport bool
	TestTypes       []string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
}
