package agentrunner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/testutil"
	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/llm"
	"ai-workspace-be/pkg/orchestrator"
)

func testAgent() *entity.Agent {
	return &entity.Agent{
		Id:         uuid.New(),
		Name:       "Task Assistant",
		Role:       "productivity assistant",
		Tone:       "friendly",
		Creativity: 0.3,
		Verbosity:  entity.VerbosityConcise,
		Stage:      "intro",
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		wantReply string
		wantStage string
	}{
		{"no signal", "Hello there", "Hello there", ""},
		{"line", "Sure, let's plan.\nSTAGE: Planning", "Sure, let's plan.", "planning"},
		{"tag", "<stage>review</stage> Looks good.", "Looks good.", "review"},
		{"last line wins", "STAGE: a\nok\nSTAGE: b", "ok", "b"},
		{"only signal", "STAGE: done", "", "done"},
		{"inline mention is not a signal", "the STAGE: word appears mid sentence", "the STAGE: word appears mid sentence", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, stage := ParseStage(tt.output)
			assert.Equal(t, tt.wantReply, reply)
			assert.Equal(t, tt.wantStage, stage)
		})
	}
}

func TestBuildMessages_Order(t *testing.T) {
	agentId := uuid.New()
	req := Request{
		Agent: testAgent(),
		Input: "what next?",
		History: []*entity.Message{
			{AgentId: &agentId, Role: entity.MessageRoleUser, Content: "hi"},
			{AgentId: &agentId, Role: entity.MessageRoleAgent, Content: "hello"},
		},
		Page: &orchestrator.PageContext{
			Messages: []*entity.Message{{Content: `Feature "Todo List" was created.`}},
			Summaries: []orchestrator.FeatureSummary{
				{Name: "Todo List", Type: feature.TypeTodo, Summary: "3 task(s) (1 completed)", Insights: []string{"1 task(s) are overdue."}},
			},
		},
		Facts: orchestrator.FeatureFacts{
			feature.TypeTracker: {"count": 1, "active": 1},
			feature.TypeTodo:    {"open": 2, "count": 3},
		},
	}

	msgs := BuildMessages(req)
	require.Len(t, msgs, 7)

	roles := make([]string, 0, len(msgs))
	for _, m := range msgs {
		roles = append(roles, m.Role)
	}
	assert.Equal(t, []string{
		llm.RoleSystem, llm.RoleSystem, llm.RoleSystem, llm.RoleSystem,
		llm.RoleUser, llm.RoleAssistant, llm.RoleUser,
	}, roles)

	assert.Contains(t, msgs[0].Content, "You are Task Assistant, a productivity assistant.")
	assert.Contains(t, msgs[0].Content, "Current conversation stage: intro.")
	assert.Contains(t, msgs[1].Content, `Feature "Todo List" was created.`)
	assert.Contains(t, msgs[2].Content, "Todo List (todo): 3 task(s) (1 completed) Insights: 1 task(s) are overdue.")
	assert.Equal(t, "Feature facts:\n- todo: count=3, open=2\n- tracker: active=1, count=1", msgs[3].Content)
	assert.Equal(t, "what next?", msgs[6].Content)
}

func TestBuildMessages_Minimal(t *testing.T) {
	msgs := BuildMessages(Request{Agent: testAgent(), Input: "hi"})
	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, "hi", msgs[1].Content)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		err       error
		wantReply string
		wantStage string
		wantErr   error
	}{
		{"plain reply", "Do the laundry first.", nil, "Do the laundry first.", "", nil},
		{"stage change", "Let's review.\nSTAGE: review", nil, "Let's review.", "review", nil},
		{"same stage is not a change", "Still here.\nSTAGE: intro", nil, "Still here.", "", nil},
		{"empty reply", "  \nSTAGE: review", nil, "", "", ErrEmptyReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &testutil.FakeLLM{Reply: tt.reply, Err: tt.err}
			runner := New(fake, 0)

			res, err := runner.Run(context.Background(), Request{Agent: testAgent(), Input: "help"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReply, res.Response)
			assert.Equal(t, tt.wantStage, res.NewStage)

			require.Len(t, fake.Options, 1)
			assert.Equal(t, 0.3, fake.Options[0].Temperature)
			assert.Equal(t, defaultMaxTokens, fake.Options[0].MaxTokens)
		})
	}
}

func TestRun_ProviderError(t *testing.T) {
	fake := &testutil.FakeLLM{Err: errors.New("connection refused")}
	_, err := New(fake, 0).Run(context.Background(), Request{Agent: testAgent(), Input: "help"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}
