package unitofwork

import (
	"context"

	"intern-matching-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	InternProfileRepository() contract.InternProfileRepository
	JobPostRepository() contract.JobPostRepository
	EntityEmbeddingRepository() contract.EntityEmbeddingRepository
	MatchingConfigRepository() contract.MatchingConfigRepository
}
