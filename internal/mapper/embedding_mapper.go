package mapper

import (
	"time"

	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type EntityEmbeddingMapper struct{}

func NewEntityEmbeddingMapper() *EntityEmbeddingMapper {
	return &EntityEmbeddingMapper{}
}

func (m *EntityEmbeddingMapper) ToEntity(e *model.EntityEmbedding) *entity.EntityEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.EntityEmbedding{
		Id:             e.Id,
		EntityKind:     e.EntityKind,
		EntityId:       e.EntityId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *EntityEmbeddingMapper) ToModel(e *entity.EntityEmbedding) *model.EntityEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.EntityEmbedding{
		Id:             e.Id,
		EntityKind:     e.EntityKind,
		EntityId:       e.EntityId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *EntityEmbeddingMapper) ToEntities(models []*model.EntityEmbedding) []*entity.EntityEmbedding {
	entities := make([]*entity.EntityEmbedding, len(models))
	for i, e := range models {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
