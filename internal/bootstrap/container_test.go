package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/internal/config"
	"ai-workspace-be/internal/testutil"
)

func testConfig(t *testing.T, provider string) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Environment:      "production",
			LogFilePath:      filepath.Join(dir, "app.log"),
			AgentLogFilePath: filepath.Join(dir, "agent.log"),
			EventsTopic:      "workspace.events",
		},
		Ai:    config.AIConfig{LLMProvider: provider, LLMModel: "test-model"},
		Agent: config.AgentConfig{TimeoutSeconds: 5, HistoryLimit: 10, PageMemoryLimit: 10},
	}
}

func TestNewContainer_LogsProviderThroughSystemLogger(t *testing.T) {
	cfg := testConfig(t, "ollama")

	c, err := NewContainer(testutil.NewTestDB(t), cfg)
	require.NoError(t, err)
	assert.NotNil(t, c.PageController)
	assert.NotNil(t, c.FeatureController)
	assert.NotNil(t, c.AgentController)
	assert.NotNil(t, c.MessageController)
	assert.NotNil(t, c.ConsumerService)
	c.Close()

	raw, err := os.ReadFile(cfg.App.LogFilePath)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"module":"BOOTSTRAP"`)
	assert.Contains(t, out, "Using LLM provider")
	assert.Contains(t, out, `"provider":"ollama"`)
	assert.Contains(t, out, `"model":"test-model"`)
}

func TestNewContainer_ProviderErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider string
	}{
		{"unsupported", "carrier-pigeon"},
		{"openai without key", "openai"},
		{"anthropic without key", "anthropic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(testutil.NewTestDB(t), testConfig(t, tt.provider))
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}
