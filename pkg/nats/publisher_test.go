package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-workspace-be/pkg/events"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "workspace.FEATURE_CREATED", Subject(events.FeatureCreated))
	assert.Equal(t, "workspace.AGENT_STAGE_CHANGED", Subject(events.AgentStageChanged))
}
