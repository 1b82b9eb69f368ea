package implementation

import (
	"context"
	"errors"

	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/mapper"
	"intern-matching-be/internal/model"
	"intern-matching-be/internal/repository/contract"
	"intern-matching-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InternProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InternProfileMapper
}

func NewInternProfileRepository(db *gorm.DB) contract.InternProfileRepository {
	return &InternProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewInternProfileMapper(),
	}
}

func (r *InternProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InternProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InternProfile, error) {
	var m model.InternProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InternProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InternProfile, error) {
	var models []*model.InternProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InternProfileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.InternProfile{}).Count(&count).Error
	return count, err
}
