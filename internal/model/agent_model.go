package model

import (
	"time"

	"github.com/google/uuid"
)

type Agent struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PageId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	FeatureId     *uuid.UUID `gorm:"type:uuid;index"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Description   string     `gorm:"type:text"`
	Role          string     `gorm:"type:varchar(255);not null"`
	Tone          string     `gorm:"type:varchar(100)"`
	Creativity    float64    `gorm:"not null;default:0.5"`
	Verbosity     string     `gorm:"type:varchar(20);not null;default:'balanced'"`
	MemoryEnabled bool       `gorm:"not null;default:true"`
	Stage         string     `gorm:"type:varchar(100)"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (Agent) TableName() string {
	return "agents"
}
