package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/repository/unitofwork"
	"ai-workspace-be/internal/testutil"
	"ai-workspace-be/pkg/events"
	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/feature/summary"
)

var baseTime = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	factory unitofwork.RepositoryFactory
	orch    *Orchestrator
	page    *entity.Page
	clock   *time.Time
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	factory, _ := testutil.NewTestFactory(t)
	now := baseTime.Add(time.Hour)
	f := &fixture{factory: factory, clock: &now}
	summarizer := summary.NewSummarizer(summary.WithClock(func() time.Time { return *f.clock }))
	f.orch = New(factory, summarizer, logger.NewNopLogger(), opts...)
	f.page = testutil.SeedPage(t, factory, uuid.New(), "Home")
	return f
}

func (f *fixture) seedFeature(t *testing.T, ft feature.FeatureType, name string) *entity.Feature {
	t.Helper()
	ctx := context.Background()
	feat := &entity.Feature{
		Id:        uuid.New(),
		PageId:    f.page.Id,
		Name:      name,
		Type:      ft,
		Category:  feature.CategoryFunctional,
		Config:    map[string]interface{}{},
		CreatedAt: baseTime,
	}
	require.NoError(t, f.factory.NewUnitOfWork(ctx).FeatureRepository().Create(ctx, feat))
	return feat
}

func (f *fixture) seedData(t *testing.T, feat *entity.Feature, raw string, updatedAt time.Time) *entity.FeatureData {
	t.Helper()
	ctx := context.Background()
	data := &entity.FeatureData{
		Id:        uuid.New(),
		PageId:    feat.PageId,
		FeatureId: feat.Id,
		Data:      json.RawMessage(raw),
		UpdatedAt: updatedAt,
	}
	require.NoError(t, f.factory.NewUnitOfWork(ctx).FeatureDataRepository().Create(ctx, data))
	return data
}

func (f *fixture) loadData(t *testing.T, featureId uuid.UUID) *entity.FeatureData {
	t.Helper()
	ctx := context.Background()
	data, err := f.factory.NewUnitOfWork(ctx).FeatureDataRepository().FindOne(ctx, specification.ByFeatureID{FeatureID: featureId})
	require.NoError(t, err)
	require.NotNil(t, data)
	return data
}

func TestCanAgentRespond(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	agent := testutil.SeedAgent(t, f.factory, f.page.Id, "Helper")
	other := testutil.SeedPage(t, f.factory, f.page.OwnerId, "Other")

	tests := []struct {
		name    string
		pageId  uuid.UUID
		agentId uuid.UUID
		want    bool
	}{
		{"agent on page", f.page.Id, agent.Id, true},
		{"agent on another page", other.Id, agent.Id, false},
		{"unknown agent", f.page.Id, uuid.New(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := f.orch.CanAgentRespond(ctx, tt.pageId, tt.agentId)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestLoadAgentContext_HistoryOldestFirstAndCapped(t *testing.T) {
	f := newFixture(t, WithHistoryLimit(3))
	ctx := context.Background()
	agent := testutil.SeedAgent(t, f.factory, f.page.Id, "Helper")
	otherAgent := testutil.SeedAgent(t, f.factory, f.page.Id, "Other")

	for i := 0; i < 5; i++ {
		testutil.SeedMessage(t, f.factory, &entity.Message{
			PageId:  f.page.Id,
			AgentId: &agent.Id,
			Role:    entity.MessageRoleUser,
			Content: fmt.Sprintf("m%d", i),
		}, baseTime.Add(time.Duration(i)*time.Minute))
	}
	testutil.SeedMessage(t, f.factory, &entity.Message{
		PageId: f.page.Id, AgentId: &otherAgent.Id, Role: entity.MessageRoleUser, Content: "not mine",
	}, baseTime.Add(10*time.Minute))
	testutil.SeedMessage(t, f.factory, &entity.Message{
		PageId: f.page.Id, Role: entity.MessageRoleAgent, Content: "page note", Source: entity.MessageSourceFeature,
	}, baseTime.Add(11*time.Minute))

	actx, err := f.orch.LoadAgentContext(ctx, f.page.Id, agent.Id)
	require.NoError(t, err)

	contents := make([]string, 0, len(actx.History))
	for _, m := range actx.History {
		contents = append(contents, m.Content)
	}
	assert.Equal(t, []string{"m2", "m3", "m4"}, contents)

	require.Len(t, actx.Page.Messages, 1)
	assert.Equal(t, "page note", actx.Page.Messages[0].Content)
	assert.Equal(t, agent.Id, actx.Agent.Id)
}

func TestLoadAgentContext_ExcludedMessagesDoNotUseTheCap(t *testing.T) {
	f := newFixture(t, WithHistoryLimit(2))
	ctx := context.Background()
	agent := testutil.SeedAgent(t, f.factory, f.page.Id, "Helper")

	var current *entity.Message
	for i := 0; i < 3; i++ {
		current = testutil.SeedMessage(t, f.factory, &entity.Message{
			PageId:  f.page.Id,
			AgentId: &agent.Id,
			Role:    entity.MessageRoleUser,
			Content: fmt.Sprintf("m%d", i),
		}, baseTime.Add(time.Duration(i)*time.Minute))
	}

	actx, err := f.orch.LoadAgentContext(ctx, f.page.Id, agent.Id, current.Id)
	require.NoError(t, err)

	contents := make([]string, 0, len(actx.History))
	for _, m := range actx.History {
		contents = append(contents, m.Content)
	}
	assert.Equal(t, []string{"m0", "m1"}, contents)
}

func TestLoadAgentContext_MemoryDisabled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	agent := testutil.SeedAgent(t, f.factory, f.page.Id, "Stateless")
	agent.MemoryEnabled = false
	require.NoError(t, f.factory.NewUnitOfWork(ctx).AgentRepository().Update(ctx, agent))

	testutil.SeedMessage(t, f.factory, &entity.Message{
		PageId: f.page.Id, AgentId: &agent.Id, Role: entity.MessageRoleUser, Content: "hello",
	}, baseTime)

	actx, err := f.orch.LoadAgentContext(ctx, f.page.Id, agent.Id)
	require.NoError(t, err)
	assert.Empty(t, actx.History)
}

func TestLoadAgentContext_WrongPage(t *testing.T) {
	f := newFixture(t)
	agent := testutil.SeedAgent(t, f.factory, f.page.Id, "Helper")

	_, err := f.orch.LoadAgentContext(context.Background(), uuid.New(), agent.Id)
	var notFound *dto.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRefreshSummary_Staleness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	feat := f.seedFeature(t, feature.TypeTodo, "Todo List")
	f.seedData(t, feat, `[{"title":"a","completed":true},{"title":"b"},{"title":"c"}]`, baseTime)

	first, err := f.orch.RefreshSummary(ctx, f.page.Id, feat.Id)
	require.NoError(t, err)
	assert.True(t, first.Regenerated)
	assert.Contains(t, first.Summary, "3 task(s) (1 completed)")
	require.NotNil(t, first.UpdatedAt)
	assert.True(t, first.UpdatedAt.Equal(*f.clock), "stamped with now, not the data time")
	assert.Equal(t, []string{}, first.Insights)

	second, err := f.orch.RefreshSummary(ctx, f.page.Id, feat.Id)
	require.NoError(t, err)
	assert.False(t, second.Regenerated)
	assert.Equal(t, first.Summary, second.Summary)

	// A data write strictly after the stamp makes it stale again.
	data := f.loadData(t, feat.Id)
	data.Data = json.RawMessage(`[{"title":"a","completed":true}]`)
	data.UpdatedAt = f.clock.Add(time.Minute)
	require.NoError(t, f.factory.NewUnitOfWork(ctx).FeatureDataRepository().Update(ctx, data))
	later := f.clock.Add(2 * time.Minute)
	f.clock = &later

	third, err := f.orch.RefreshSummary(ctx, f.page.Id, feat.Id)
	require.NoError(t, err)
	assert.True(t, third.Regenerated)
	assert.Contains(t, third.Summary, "1 task(s) (1 completed)")
	assert.Equal(t, third.Summary, f.loadData(t, feat.Id).AiSummary)
}

func TestRefreshSummary_NoDataYet(t *testing.T) {
	f := newFixture(t)
	feat := f.seedFeature(t, feature.TypeNotes, "Notes")

	s, err := f.orch.RefreshSummary(context.Background(), f.page.Id, feat.Id)
	require.NoError(t, err)
	assert.Equal(t, "No notes yet. Capture your first thought.", s.Summary)
	assert.False(t, s.Regenerated)
}

func TestRefreshSummary_FeatureOnOtherPage(t *testing.T) {
	f := newFixture(t)
	feat := f.seedFeature(t, feature.TypeNotes, "Notes")

	_, err := f.orch.RefreshSummary(context.Background(), uuid.New(), feat.Id)
	var notFound *dto.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestHandleFeatureEvent_RefreshesAllFeaturesAndRecordsMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	todo := f.seedFeature(t, feature.TypeTodo, "Todo List")
	ideas := f.seedFeature(t, feature.TypeIdeas, "Ideas Board")
	f.seedData(t, todo, `[{"title":"a"}]`, baseTime)
	f.seedData(t, ideas, `[{"title":"x"},{"title":"y"}]`, baseTime)

	payload := events.NewFeatureDataUpdated(f.page.Id, todo.Id, 1).Payload()
	require.NoError(t, f.orch.HandleFeatureEvent(ctx, f.page.Id, todo, events.FeatureDataUpdated, payload))

	assert.NotEmpty(t, f.loadData(t, todo.Id).AiSummary)
	assert.Equal(t, "2 idea(s) collected.", f.loadData(t, ideas.Id).AiSummary)

	msgs, err := f.factory.NewUnitOfWork(ctx).MessageRepository().FindAll(ctx,
		specification.ByPageID{PageID: f.page.Id},
		specification.PageLevel{},
	)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, entity.MessageSourceFeature, msgs[0].Source)
	require.NotNil(t, msgs[0].FeatureId)
	assert.Equal(t, todo.Id, *msgs[0].FeatureId)
	assert.Equal(t, `Feature "Todo List" data was updated (1 item(s)).`, msgs[0].Content)
}

func TestFeatureFacts_AggregatesPerType(t *testing.T) {
	f := newFixture(t)
	first := f.seedFeature(t, feature.TypeTodo, "Work")
	second := f.seedFeature(t, feature.TypeTodo, "Home")
	tracker := f.seedFeature(t, feature.TypeTracker, "Habits")
	f.seedData(t, first, `[{"completed":true},{}]`, baseTime)
	f.seedData(t, second, `[{}]`, baseTime)
	f.seedData(t, tracker, `[{"name":"run","active":true}]`, baseTime)

	facts, err := f.orch.FeatureFacts(context.Background(), f.page.Id)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"count": 3, "completed": 1, "open": 2}, facts[feature.TypeTodo])
	assert.Equal(t, map[string]int{"count": 1, "active": 1, "completed": 0}, facts[feature.TypeTracker])
}

func TestEventMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		payload   map[string]interface{}
		want      string
	}{
		{"created with agents", events.FeatureCreated, map[string]interface{}{"agent_ids": []string{"a", "b"}}, `Feature "Todo List" was created with 2 agent(s).`},
		{"created", events.FeatureCreated, nil, `Feature "Todo List" was created.`},
		{"data", events.FeatureDataUpdated, map[string]interface{}{"item_count": 4}, `Feature "Todo List" data was updated (4 item(s)).`},
		{"deleted", events.FeatureDeleted, nil, `Feature "Todo List" was deleted.`},
		{"other", "FEATURE_RENAMED", nil, `Feature "Todo List": feature renamed`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EventMessage(tt.eventType, "Todo List", tt.payload))
		})
	}
}
