package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type EntityEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntityKind     string          `gorm:"type:varchar(16);not null;uniqueIndex:idx_entity_embeddings_kind_id,priority:1"`
	EntityId       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_entity_embeddings_kind_id,priority:2"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text dimensionality
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (EntityEmbedding) TableName() string {
	return "entity_embeddings"
}
