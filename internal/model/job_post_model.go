package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JobPost rows are owned by the CRUD platform; this service only reads them.
type JobPost struct {
	Id               uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId        uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Company          *Company                    `gorm:"foreignKey:CompanyId"`
	Title            string                      `gorm:"type:varchar(255);not null"`
	Description      string                      `gorm:"type:text"`
	Requirements     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Responsibilities datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime"`
}

func (JobPost) TableName() string {
	return "job_posts"
}
