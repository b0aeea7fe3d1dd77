package database

import (
	"ai-workspace-be/internal/model"

	"gorm.io/gorm"
)

// Models lists every table owned by the workspace service.
func Models() []interface{} {
	return []interface{}{
		&model.Page{},
		&model.Agent{},
		&model.Feature{},
		&model.FeaturePlan{},
		&model.FeatureData{},
		&model.Message{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
