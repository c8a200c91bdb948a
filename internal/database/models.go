package database

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID
	Title          string
	RequiredSkills string
	Description    string
	CreatedAt      time.Time
}

type Resume struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FileName  string
	ObjectKey string
	Skills    string
	CreatedAt time.Time
}

type Score struct {
	ID                uuid.UUID
	ResumeID          uuid.UUID
	JobID             uuid.UUID
	OwnerID           uuid.UUID
	Value             float64
	RecommendedSkills string
	Status            string
	IsShortlisted     bool
	CreatedAt         time.Time
}
