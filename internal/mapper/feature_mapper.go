// FILE: internal/mapper/feature_mapper.go
package mapper

import (
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/model"
	"ai-workspace-be/pkg/feature"

	"github.com/google/uuid"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(f *model.Feature) *entity.Feature {
	if f == nil {
		return nil
	}
	e := &entity.Feature{
		Id:            f.Id,
		PageId:        f.PageId,
		Name:          f.Name,
		Type:          feature.FeatureType(f.Type),
		Category:      feature.Category(f.Category),
		Config:        map[string]interface{}{},
		AgentIds:      []uuid.UUID{},
		OriginalInput: f.OriginalInput,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
	fromJSON(f.UIConfig, &e.UIConfig)
	fromJSON(f.Config, &e.Config)
	fromJSON(f.AgentIds, &e.AgentIds)
	return e
}

func (m *FeatureMapper) ToModel(f *entity.Feature) *model.Feature {
	if f == nil {
		return nil
	}
	agentIds := f.AgentIds
	if agentIds == nil {
		agentIds = []uuid.UUID{}
	}
	return &model.Feature{
		Id:            f.Id,
		PageId:        f.PageId,
		Name:          f.Name,
		Type:          string(f.Type),
		Category:      string(f.Category),
		UIConfig:      toJSON(f.UIConfig),
		Config:        toJSON(f.Config),
		AgentIds:      toJSON(agentIds),
		OriginalInput: f.OriginalInput,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func (m *FeatureMapper) ToEntities(features []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, len(features))
	for i, f := range features {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

func (m *FeatureMapper) PlanToEntity(p *model.FeaturePlan) *entity.FeaturePlan {
	if p == nil {
		return nil
	}
	e := &entity.FeaturePlan{
		Id:        p.Id,
		PageId:    p.PageId,
		FeatureId: p.FeatureId,
		Plan: feature.Plan{
			FeatureName: p.FeatureName,
			PlannerType: feature.PlannerType(p.PlannerType),
			Description: p.Description,
		},
		CreatedAt: p.CreatedAt,
	}
	fromJSON(p.UI, &e.Plan.UI)
	fromJSON(p.DataModel, &e.Plan.DataModel)
	fromJSON(p.AICapabilities, &e.Plan.AICapabilities)
	return e
}

func (m *FeatureMapper) PlanToModel(p *entity.FeaturePlan) *model.FeaturePlan {
	if p == nil {
		return nil
	}
	return &model.FeaturePlan{
		Id:             p.Id,
		PageId:         p.PageId,
		FeatureId:      p.FeatureId,
		FeatureName:    p.Plan.FeatureName,
		PlannerType:    string(p.Plan.PlannerType),
		Description:    p.Plan.Description,
		UI:             toJSON(p.Plan.UI),
		DataModel:      toJSON(p.Plan.DataModel),
		AICapabilities: toJSON(p.Plan.AICapabilities),
		CreatedAt:      p.CreatedAt,
	}
}
