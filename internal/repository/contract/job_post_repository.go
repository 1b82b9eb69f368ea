package contract

import (
	"context"

	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/repository/specification"
)

type JobPostRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobPost, error)
	// FindAll hydrates company names via join; a ByIDs spec makes it the
	// single batched read of the match read path.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobPost, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
