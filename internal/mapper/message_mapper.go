package mapper

import (
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		PageId:    msg.PageId,
		AgentId:   msg.AgentId,
		FeatureId: msg.FeatureId,
		Role:      msg.Role,
		Content:   msg.Content,
		Source:    msg.Source,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		PageId:    msg.PageId,
		AgentId:   msg.AgentId,
		FeatureId: msg.FeatureId,
		Role:      msg.Role,
		Content:   msg.Content,
		Source:    msg.Source,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(messages []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(messages))
	for i, msg := range messages {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
