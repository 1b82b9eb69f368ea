package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InternProfile rows are owned by the CRUD platform; this service only reads them.
type InternProfile struct {
	Id        uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName  string                         `gorm:"type:varchar(255)"`
	Summary   string                         `gorm:"type:text"`
	Skills    datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	CreatedAt time.Time                      `gorm:"autoCreateTime"`
	UpdatedAt time.Time                      `gorm:"autoUpdateTime"`
}

func (InternProfile) TableName() string {
	return "intern_profiles"
}
