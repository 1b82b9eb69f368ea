package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobPost is a read-only projection of the job_posts row owned by the CRUD
// platform. CompanyName is resolved via join on hydration.
type JobPost struct {
	Id               uuid.UUID
	CompanyId        uuid.UUID
	CompanyName      string
	Title            string
	Description      string
	Requirements     []string
	Responsibilities []string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
