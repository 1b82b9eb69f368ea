package entity

import (
	"time"

	"github.com/google/uuid"
)

// InternProfile is a read-only projection of the intern_profiles row owned by
// the CRUD platform.
type InternProfile struct {
	Id        uuid.UUID
	FullName  string
	Summary   string
	Skills    []string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
