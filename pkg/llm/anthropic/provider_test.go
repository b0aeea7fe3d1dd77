package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/pkg/llm"
)

func newTestProvider(srv *httptest.Server, model string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	return NewAnthropicProviderFromClient(&client, model)
}

func messageResponse(blocks ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"id":            "msg_1",
		"type":          "message",
		"role":          "assistant",
		"model":         "claude-test",
		"content":       blocks,
		"stop_reason":   "end_turn",
		"stop_sequence": nil,
		"usage":         map[string]interface{}{"input_tokens": 1, "output_tokens": 1},
	}
}

func textBlock(text string) map[string]interface{} {
	return map[string]interface{}{"type": "text", "text": text}
}

func TestAnthropicProvider_Chat(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse(textBlock("hi "), textBlock("there")))
	}))
	defer srv.Close()

	out, err := newTestProvider(srv, "claude-test").Chat(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "be nice"},
		{Role: llm.RoleSystem, Content: "be brief"},
		{Role: "agent", Content: "earlier reply"},
		{Role: llm.RoleUser, Content: "hello"},
	}, llm.WithTemperature(0.2), llm.WithMaxTokens(64))

	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
	assert.Equal(t, "claude-test", got["model"])
	assert.InDelta(t, 0.2, got["temperature"], 0.0001)
	assert.EqualValues(t, 64, got["max_tokens"])

	// system prompts go to the top-level field, never into messages
	system, ok := got["system"].([]interface{})
	require.True(t, ok)
	require.Len(t, system, 1)
	assert.Equal(t, "be nice\n\nbe brief", system[0].(map[string]interface{})["text"])

	messages, ok := got["messages"].([]interface{})
	require.True(t, ok)
	roles := make([]string, 0, len(messages))
	for _, m := range messages {
		roles = append(roles, m.(map[string]interface{})["role"].(string))
	}
	assert.Equal(t, []string{"assistant", "user"}, roles)
}

func TestAnthropicProvider_NoSystemField(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse(textBlock("ok")))
	}))
	defer srv.Close()

	out, err := newTestProvider(srv, "claude-test").Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.NotContains(t, got, "system")
}

func TestAnthropicProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad model"}}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv, "missing").Generate(context.Background(), "hi")
	assert.ErrorContains(t, err, "anthropic api error")
}
