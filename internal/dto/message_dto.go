package dto

import (
	"time"

	"github.com/google/uuid"
)

type MessageResponse struct {
	Id        uuid.UUID  `json:"id"`
	PageId    uuid.UUID  `json:"page_id"`
	AgentId   *uuid.UUID `json:"agent_id"`
	FeatureId *uuid.UUID `json:"feature_id"`
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
}

type ClearMessagesResponse struct {
	Deleted int64 `json:"deleted"`
}
