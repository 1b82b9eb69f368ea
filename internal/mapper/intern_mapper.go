package mapper

import (
	"time"

	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/model"
)

type InternProfileMapper struct{}

func NewInternProfileMapper() *InternProfileMapper {
	return &InternProfileMapper{}
}

func (m *InternProfileMapper) ToEntity(e *model.InternProfile) *entity.InternProfile {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.InternProfile{
		Id:        e.Id,
		FullName:  e.FullName,
		Summary:   e.Summary,
		Skills:    []string(e.Skills),
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InternProfileMapper) ToEntities(models []*model.InternProfile) []*entity.InternProfile {
	entities := make([]*entity.InternProfile, len(models))
	for i, e := range models {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
