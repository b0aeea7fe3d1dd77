package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	FeatureCreated     = "FEATURE_CREATED"
	FeatureDataUpdated = "FEATURE_DATA_UPDATED"
	FeatureDeleted     = "FEATURE_DELETED"
	AgentStageChanged  = "AGENT_STAGE_CHANGED"
)

// Envelope is the wire form of an Event on the in-process bus and on NATS.
type Envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func Marshal(e Event) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
}

func Unmarshal(data []byte) (BaseEvent, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return BaseEvent{}, err
	}
	return BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}

func NewFeatureCreated(pageId, featureId uuid.UUID, featureType, name string, agentIds []uuid.UUID) BaseEvent {
	ids := make([]string, 0, len(agentIds))
	for _, id := range agentIds {
		ids = append(ids, id.String())
	}
	return BaseEvent{
		Type: FeatureCreated,
		Data: map[string]interface{}{
			"page_id":      pageId.String(),
			"feature_id":   featureId.String(),
			"feature_type": featureType,
			"name":         name,
			"agent_ids":    ids,
		},
		OccurredAt: time.Now(),
	}
}

func NewFeatureDataUpdated(pageId, featureId uuid.UUID, itemCount int) BaseEvent {
	return BaseEvent{
		Type: FeatureDataUpdated,
		Data: map[string]interface{}{
			"page_id":    pageId.String(),
			"feature_id": featureId.String(),
			"item_count": itemCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewFeatureDeleted(pageId, featureId uuid.UUID, name string, agentsDeleted bool) BaseEvent {
	return BaseEvent{
		Type: FeatureDeleted,
		Data: map[string]interface{}{
			"page_id":        pageId.String(),
			"feature_id":     featureId.String(),
			"name":           name,
			"agents_deleted": agentsDeleted,
		},
		OccurredAt: time.Now(),
	}
}

func NewAgentStageChanged(pageId, agentId uuid.UUID, from, to string) BaseEvent {
	return BaseEvent{
		Type: AgentStageChanged,
		Data: map[string]interface{}{
			"page_id":  pageId.String(),
			"agent_id": agentId.String(),
			"from":     from,
			"to":       to,
		},
		OccurredAt: time.Now(),
	}
}
