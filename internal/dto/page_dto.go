package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePageRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type PageResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	OwnerId      uuid.UUID `json:"owner_id"`
	FeatureCount int64     `json:"feature_count"`
	AgentCount   int64     `json:"agent_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
