package mapper

import (
	"encoding/json"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/model"

	"gorm.io/datatypes"
)

type FeatureDataMapper struct{}

func NewFeatureDataMapper() *FeatureDataMapper {
	return &FeatureDataMapper{}
}

func (m *FeatureDataMapper) ToEntity(d *model.FeatureData) *entity.FeatureData {
	if d == nil {
		return nil
	}
	return &entity.FeatureData{
		Id:                 d.Id,
		PageId:             d.PageId,
		FeatureId:          d.FeatureId,
		Data:               json.RawMessage(d.Data),
		AiSummary:          d.AiSummary,
		AiSummaryUpdatedAt: d.AiSummaryUpdatedAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (m *FeatureDataMapper) ToModel(d *entity.FeatureData) *model.FeatureData {
	if d == nil {
		return nil
	}
	data := datatypes.JSON(d.Data)
	if len(data) == 0 {
		data = datatypes.JSON("[]")
	}
	return &model.FeatureData{
		Id:                 d.Id,
		PageId:             d.PageId,
		FeatureId:          d.FeatureId,
		Data:               data,
		AiSummary:          d.AiSummary,
		AiSummaryUpdatedAt: d.AiSummaryUpdatedAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (m *FeatureDataMapper) ToEntities(items []*model.FeatureData) []*entity.FeatureData {
	entities := make([]*entity.FeatureData, len(items))
	for i, d := range items {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
