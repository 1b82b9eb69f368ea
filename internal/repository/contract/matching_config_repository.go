package contract

import (
	"context"

	"intern-matching-be/internal/model"
)

type MatchingConfigRepository interface {
	// FindByKey returns (nil, nil) when the key is not configured.
	FindByKey(ctx context.Context, key string) (*model.MatchingConfiguration, error)
}
