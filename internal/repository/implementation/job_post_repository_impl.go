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

type JobPostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JobPostMapper
}

func NewJobPostRepository(db *gorm.DB) contract.JobPostRepository {
	return &JobPostRepositoryImpl{
		db:     db,
		mapper: mapper.NewJobPostMapper(),
	}
}

func (r *JobPostRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *JobPostRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobPost, error) {
	var m model.JobPost
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Company"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// FindAll preloads companies in a second IN query, keeping the read path at a
// constant number of statements regardless of match count.
func (r *JobPostRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobPost, error) {
	var models []*model.JobPost
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Company"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *JobPostRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.JobPost{}).Count(&count).Error
	return count, err
}
