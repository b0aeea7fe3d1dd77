package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAgentRequest struct {
	Name          string     `json:"name" validate:"required,max=100"`
	Description   string     `json:"description" validate:"max=500"`
	Role          string     `json:"role" validate:"required,max=100"`
	Tone          string     `json:"tone" validate:"max=50"`
	Creativity    *float64   `json:"creativity" validate:"omitempty,gte=0,lte=1"`
	Verbosity     string     `json:"verbosity" validate:"omitempty,oneof=concise balanced detailed"`
	MemoryEnabled *bool      `json:"memory_enabled"`
	FeatureId     *uuid.UUID `json:"feature_id"`
}

type AgentResponse struct {
	Id            uuid.UUID  `json:"id"`
	PageId        uuid.UUID  `json:"page_id"`
	FeatureId     *uuid.UUID `json:"feature_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Role          string     `json:"role"`
	Tone          string     `json:"tone"`
	Creativity    float64    `json:"creativity"`
	Verbosity     string     `json:"verbosity"`
	MemoryEnabled bool       `json:"memory_enabled"`
	Stage         string     `json:"stage"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ExecuteAgentRequest struct {
	Input string `json:"input" validate:"required,max=4000"`
}

// ExecuteAgentResponse always carries a reply. Fallback marks a reply written
// because the model call failed or timed out.
type ExecuteAgentResponse struct {
	UserMessage MessageResponse `json:"user_message"`
	Reply       MessageResponse `json:"reply"`
	NewStage    string          `json:"new_stage,omitempty"`
	Fallback    bool            `json:"fallback"`
}
