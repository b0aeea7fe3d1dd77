package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	VerbosityConcise  = "concise"
	VerbosityBalanced = "balanced"
	VerbosityDetailed = "detailed"

	DefaultAgentStage = "intro"
)

// Agent is an AI persona living on a page. FeatureId is set when the agent
// was created for (or bound to) a specific feature.
type Agent struct {
	Id            uuid.UUID
	PageId        uuid.UUID
	FeatureId     *uuid.UUID
	Name          string
	Description   string
	Role          string
	Tone          string
	Creativity    float64
	Verbosity     string
	MemoryEnabled bool
	Stage         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
