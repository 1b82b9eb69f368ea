package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEntity pins an embedding row to one (kind, entity_id) pair.
type ByEntity struct {
	Kind     string
	EntityID uuid.UUID
}

func (s ByEntity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity_kind = ? AND entity_id = ?", s.Kind, s.EntityID)
}

// ByEntityKind restricts a query to one embedding space.
type ByEntityKind struct {
	Kind string
}

func (s ByEntityKind) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity_kind = ?", s.Kind)
}
