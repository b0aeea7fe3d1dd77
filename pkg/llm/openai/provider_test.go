package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/pkg/llm"
)

func newTestProvider(srv *httptest.Server, model string) *OpenAIProvider {
	client := openai.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	return NewOpenAIProviderFromClient(&client, model)
}

func completion(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 0,
		"model":   "gpt-test",
		"choices": []map[string]interface{}{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]interface{}{"role": "assistant", "content": content},
		}},
	}
}

func TestOpenAIProvider_Chat(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion("hi there"))
	}))
	defer srv.Close()

	out, err := newTestProvider(srv, "gpt-test").Chat(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "be nice"},
		{Role: "agent", Content: "earlier reply"},
		{Role: llm.RoleUser, Content: "hello"},
	}, llm.WithTemperature(0.2), llm.WithMaxTokens(64))

	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
	assert.Equal(t, "gpt-test", got["model"])
	assert.InDelta(t, 0.2, got["temperature"], 0.0001)
	assert.EqualValues(t, 64, got["max_completion_tokens"])

	messages, ok := got["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 3)
	roles := make([]string, 0, len(messages))
	for _, m := range messages {
		roles = append(roles, m.(map[string]interface{})["role"].(string))
	}
	assert.Equal(t, []string{"system", "assistant", "user"}, roles)
}

func TestOpenAIProvider_ModelOverride(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion("ok"))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv, "gpt-test").Generate(context.Background(), "hi", llm.WithModel("gpt-other"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-other", got["model"])
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"message":"bad model","type":"invalid_request_error"}}`))
			},
			wantErr: "openai api error",
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				body := completion("")
				body["choices"] = []interface{}{}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(body)
			},
			wantErr: "no choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestProvider(srv, "gpt-test").Generate(context.Background(), "hi")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewOpenAIProvider_DefaultModel(t *testing.T) {
	p := NewOpenAIProvider("", "", "")
	assert.Equal(t, string(openai.ChatModelGPT4oMini), p.modelName)
}
