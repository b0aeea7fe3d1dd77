package mapper

import (
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/model"
)

type AgentMapper struct{}

func NewAgentMapper() *AgentMapper {
	return &AgentMapper{}
}

func (m *AgentMapper) ToEntity(a *model.Agent) *entity.Agent {
	if a == nil {
		return nil
	}
	return &entity.Agent{
		Id:            a.Id,
		PageId:        a.PageId,
		FeatureId:     a.FeatureId,
		Name:          a.Name,
		Description:   a.Description,
		Role:          a.Role,
		Tone:          a.Tone,
		Creativity:    a.Creativity,
		Verbosity:     a.Verbosity,
		MemoryEnabled: a.MemoryEnabled,
		Stage:         a.Stage,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *AgentMapper) ToModel(a *entity.Agent) *model.Agent {
	if a == nil {
		return nil
	}
	return &model.Agent{
		Id:            a.Id,
		PageId:        a.PageId,
		FeatureId:     a.FeatureId,
		Name:          a.Name,
		Description:   a.Description,
		Role:          a.Role,
		Tone:          a.Tone,
		Creativity:    a.Creativity,
		Verbosity:     a.Verbosity,
		MemoryEnabled: a.MemoryEnabled,
		Stage:         a.Stage,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *AgentMapper) ToEntities(agents []*model.Agent) []*entity.Agent {
	entities := make([]*entity.Agent, len(agents))
	for i, a := range agents {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
