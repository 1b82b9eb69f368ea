package implementation

import (
	"context"
	"errors"

	"intern-matching-be/internal/model"
	"intern-matching-be/internal/repository/contract"

	"gorm.io/gorm"
)

type MatchingConfigRepositoryImpl struct {
	db *gorm.DB
}

func NewMatchingConfigRepository(db *gorm.DB) contract.MatchingConfigRepository {
	return &MatchingConfigRepositoryImpl{db: db}
}

func (r *MatchingConfigRepositoryImpl) FindByKey(ctx context.Context, key string) (*model.MatchingConfiguration, error) {
	var m model.MatchingConfiguration
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
