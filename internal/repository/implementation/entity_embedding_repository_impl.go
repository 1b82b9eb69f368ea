package implementation

import (
	"context"
	"errors"
	"fmt"

	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/mapper"
	"intern-matching-be/internal/model"
	"intern-matching-be/internal/pkg/matcherr"
	"intern-matching-be/internal/repository/contract"
	"intern-matching-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntityEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EntityEmbeddingMapper
}

func NewEntityEmbeddingRepository(db *gorm.DB) contract.EntityEmbeddingRepository {
	return &EntityEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewEntityEmbeddingMapper(),
	}
}

func (r *EntityEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert replaces document and embedding_value together in one statement, so
// a reader can never observe a new document paired with a stale vector.
func (r *EntityEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.EntityEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "entity_kind"}, {Name: "entity_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"document":        m.Document,
				"embedding_value": m.EmbeddingValue,
				"updated_at":      gorm.Expr("now()"),
			}),
		}).
		Create(m).Error
	if err != nil {
		return matcherr.NewStoreError("upsert", fmt.Sprintf("upsert %s embedding %s: %v", embedding.EntityKind, embedding.EntityId, err))
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *EntityEmbeddingRepositoryImpl) FindByEntity(ctx context.Context, kind string, entityId uuid.UUID) (*entity.EntityEmbedding, error) {
	var m model.EntityEmbedding
	err := r.db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", kind, entityId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, matcherr.NewStoreError("find", fmt.Sprintf("find %s embedding %s: %v", kind, entityId, err))
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EntityEmbeddingRepositoryImpl) DeleteByEntity(ctx context.Context, kind string, entityId uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", kind, entityId).
		Delete(&model.EntityEmbedding{}).Error
	if err != nil {
		return matcherr.NewStoreError("delete", fmt.Sprintf("delete %s embedding %s: %v", kind, entityId, err))
	}
	return nil
}

func (r *EntityEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.EntityEmbedding{}).Count(&count).Error
	if err != nil {
		return 0, matcherr.NewStoreError("count", err.Error())
	}
	return count, nil
}

// SearchSimilarWithScore ranks every stored vector of one kind against the
// query vector. pgvector's <=> operator is cosine distance, so similarity is
// 1 - distance. entity_id ASC keeps equal-score ordering stable across calls.
func (r *EntityEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, kind string, embedding []float32, limit int, threshold float64) ([]*contract.ScoredEntityEmbedding, error) {
	if limit <= 0 {
		limit = 10
	}

	type result struct {
		model.EntityEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("entity_embeddings").
		Select("entity_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("entity_kind = ?", kind).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC, entity_id ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, matcherr.NewStoreError("search", fmt.Sprintf("similarity search over %s embeddings: %v", kind, err))
	}

	scored := make([]*contract.ScoredEntityEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredEntityEmbedding{
			Embedding:  r.mapper.ToEntity(&res.EntityEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
