package contract

import (
	"context"

	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/repository/specification"
)

type InternProfileRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InternProfile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InternProfile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
