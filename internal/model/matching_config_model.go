package model

import "time"

// MatchingConfiguration is a key/value row for runtime-tunable matching
// parameters (similarity threshold, match limit).
type MatchingConfiguration struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (MatchingConfiguration) TableName() string {
	return "matching_configurations"
}
