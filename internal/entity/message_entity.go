package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageRoleUser  = "user"
	MessageRoleAgent = "agent"

	MessageSourceChat    = "chat"
	MessageSourceFeature = "feature"
)

// Message is one thread entry. A nil AgentId marks page-level memory.
type Message struct {
	Id        uuid.UUID
	PageId    uuid.UUID
	AgentId   *uuid.UUID
	FeatureId *uuid.UUID
	Role      string
	Content   string
	Source    string
	CreatedAt time.Time
}
