package store

import "github.com/google/uuid"

// Document is one retrieved catalog candidate handed to the prompt builder.
type Document struct {
	AssessmentId    uuid.UUID
	Name            string
	URL             string
	Content         string
	Score           float32
	DurationMinutes int
	RemoteTesting   bool
	AdaptiveSupport bool
	TestTypes       []string
}
