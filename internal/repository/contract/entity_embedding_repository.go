package contract

import (
	"context"

	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredEntityEmbedding wraps an EntityEmbedding with its similarity score.
type ScoredEntityEmbedding struct {
	Embedding  *entity.EntityEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type EntityEmbeddingRepository interface {
	// Upsert inserts or fully replaces the row for (kind, entity_id).
	// Document and embedding are always written together; a partial overwrite
	// is not possible.
	Upsert(ctx context.Context, embedding *entity.EntityEmbedding) error
	// FindByEntity returns (nil, nil) when no row exists, so callers can
	// distinguish "never embedded" from a store failure.
	FindByEntity(ctx context.Context, kind string, entityId uuid.UUID) (*entity.EntityEmbedding, error)
	DeleteByEntity(ctx context.Context, kind string, entityId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns the top-limit rows of the given kind by
	// cosine similarity to the query vector, rows under threshold excluded,
	// ordered similarity DESC with entity_id ASC as the tie-break.
	SearchSimilarWithScore(ctx context.Context, kind string, embedding []float32, limit int, threshold float64) ([]*ScoredEntityEmbedding, error)
}
