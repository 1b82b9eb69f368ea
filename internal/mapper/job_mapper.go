package mapper

import (
	"time"

	"intern-matching-be/internal/entity"
	"intern-matching-be/internal/model"
)

type JobPostMapper struct{}

func NewJobPostMapper() *JobPostMapper {
	return &JobPostMapper{}
}

func (m *JobPostMapper) ToEntity(e *model.JobPost) *entity.JobPost {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	companyName := ""
	if e.Company != nil {
		companyName = e.Company.Name
	}

	return &entity.JobPost{
		Id:               e.Id,
		CompanyId:        e.CompanyId,
		CompanyName:      companyName,
		Title:            e.Title,
		Description:      e.Description,
		Requirements:     []string(e.Requirements),
		Responsibilities: []string(e.Responsibilities),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *JobPostMapper) ToEntities(models []*model.JobPost) []*entity.JobPost {
	entities := make([]*entity.JobPost, len(models))
	for i, e := range models {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
