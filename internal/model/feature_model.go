// FILE: internal/model/feature_model.go
// GORM models for generated features and their planner output
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Feature is a generated capability bound to a page
type Feature struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	PageId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Type          string         `gorm:"type:varchar(50);not null;index"`
	Category      string         `gorm:"type:varchar(20);not null"`
	UIConfig      datatypes.JSON `gorm:"column:ui_config;type:jsonb"`
	Config        datatypes.JSON `gorm:"type:jsonb"`
	AgentIds      datatypes.JSON `gorm:"type:jsonb"`
	OriginalInput string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (Feature) TableName() string {
	return "features"
}

// FeaturePlan is the planner output, stored next to the feature it produced
type FeaturePlan struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	PageId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	FeatureId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	FeatureName    string         `gorm:"type:varchar(255);not null"`
	PlannerType    string         `gorm:"type:varchar(50);not null"`
	Description    string         `gorm:"type:text"`
	UI             datatypes.JSON `gorm:"column:ui;type:jsonb"`
	DataModel      datatypes.JSON `gorm:"type:jsonb"`
	AICapabilities datatypes.JSON `gorm:"column:ai_capabilities;type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (FeaturePlan) TableName() string {
	return "feature_plans"
}
