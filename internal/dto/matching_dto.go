package dto

import (
	"time"

	"github.com/google/uuid"
)

// Trigger payloads (fire-and-forget POST after a successful CRUD write).

type EmbedInternRequest struct {
	InternId uuid.UUID `json:"intern_id" validate:"required"`
}

type EmbedJobRequest struct {
	JobId uuid.UUID `json:"job_id" validate:"required"`
}

// PublishEmbedEntityMessage is the internal queue payload for the write path.
type PublishEmbedEntityMessage struct {
	Kind     string    `json:"kind"`
	EntityId uuid.UUID `json:"entity_id"`
}

type EmbedAcceptedResponse struct {
	Kind     string    `json:"kind"`
	EntityId uuid.UUID `json:"entity_id"`
}

// JobMatchResponse is one ranked job for an intern, company name resolved.
type JobMatchResponse struct {
	JobId       uuid.UUID  `json:"job_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CompanyName string     `json:"company_name"`
	Similarity  float64    `json:"similarity"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CandidateMatchResponse is one ranked intern profile for a job post.
type CandidateMatchResponse struct {
	InternId   uuid.UUID `json:"intern_id"`
	FullName   string    `json:"full_name"`
	Summary    string    `json:"summary"`
	Skills     []string  `json:"skills"`
	Similarity float64   `json:"similarity"`
}
