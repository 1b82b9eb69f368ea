package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntityEmbedding is one embedding record per (kind, entity). Document is the
// exact normalized text the vector was produced from; the two are always
// written together.
type EntityEmbedding struct {
	Id             uuid.UUID
	EntityKind     string
	EntityId       uuid.UUID
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
