package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeatureData holds the raw payload of a feature. UpdatedAt is set by the
// service on data writes only, so summary writes never make it look fresh.
// A feature has at most one row.
type FeatureData struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	PageId             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_feature_data_page_feature"`
	FeatureId          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_feature_data_page_feature;index"`
	Data               datatypes.JSON `gorm:"type:jsonb"`
	AiSummary          string         `gorm:"type:text"`
	AiSummaryUpdatedAt *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime:false"`
}

func (FeatureData) TableName() string {
	return "feature_data"
}
