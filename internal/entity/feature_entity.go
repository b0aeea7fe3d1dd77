// FILE: internal/entity/feature_entity.go
package entity

import (
	"time"

	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/feature/template"

	"github.com/google/uuid"
)

// Feature is a generated capability. Config carries the template flags plus
// a copy of the plan under the "plan" key.
type Feature struct {
	Id            uuid.UUID
	PageId        uuid.UUID
	Name          string
	Type          feature.FeatureType
	Category      feature.Category
	UIConfig      template.UIConfig
	Config        map[string]interface{}
	AgentIds      []uuid.UUID
	OriginalInput string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasAgent reports whether id is listed in AgentIds.
func (f *Feature) HasAgent(id uuid.UUID) bool {
	for _, a := range f.AgentIds {
		if a == id {
			return true
		}
	}
	return false
}

type FeaturePlan struct {
	Id        uuid.UUID
	PageId    uuid.UUID
	FeatureId uuid.UUID
	Plan      feature.Plan
	CreatedAt time.Time
}
