package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/repository/unitofwork"
	"ai-workspace-be/internal/testutil"
	"ai-workspace-be/pkg/agentrunner"
	"ai-workspace-be/pkg/events"
	"ai-workspace-be/pkg/feature/summary"
	"ai-workspace-be/pkg/feature/template"
	"ai-workspace-be/pkg/orchestrator"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.EventType())
	}
	return types
}

type testEnv struct {
	factory   unitofwork.RepositoryFactory
	publisher *recordingPublisher
	llm       *testutil.FakeLLM
	orch      *orchestrator.Orchestrator
	pages     IPageService
	features  IFeatureService
	agents    IAgentService
	messages  IMessageService
	ownerId   uuid.UUID
	page      *entity.Page
}

type envOption func(*envConfig)

type envConfig struct {
	catalog      *template.Catalog
	timeout      time.Duration
	historyLimit int
}

func withCatalog(c *template.Catalog) envOption {
	return func(cfg *envConfig) { cfg.catalog = c }
}

func withTimeout(d time.Duration) envOption {
	return func(cfg *envConfig) { cfg.timeout = d }
}

func withHistoryLimit(n int) envOption {
	return func(cfg *envConfig) { cfg.historyLimit = n }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	cfg := envConfig{catalog: template.DefaultCatalog(), timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory, _ := testutil.NewTestFactory(t)
	log := logger.NewNopLogger()
	publisher := &recordingPublisher{}
	fake := &testutil.FakeLLM{Reply: "Happy to help."}
	orch := orchestrator.New(factory, summary.NewSummarizer(), log, orchestrator.WithHistoryLimit(cfg.historyLimit))

	env := &testEnv{
		factory:   factory,
		publisher: publisher,
		llm:       fake,
		orch:      orch,
		pages:     NewPageService(factory),
		features:  NewFeatureService(factory, cfg.catalog, orch, publisher, log),
		agents:    NewAgentService(factory, orch, agentrunner.New(fake, 0), publisher, log, log, cfg.timeout),
		messages:  NewMessageService(factory, log),
		ownerId:   uuid.New(),
	}
	env.page = testutil.SeedPage(t, factory, env.ownerId, "Home")
	return env
}

func (e *testEnv) uow() unitofwork.UnitOfWork {
	return e.factory.NewUnitOfWork(context.Background())
}

func (e *testEnv) countMessages(t *testing.T, specs ...specification.Specification) int64 {
	t.Helper()
	specs = append([]specification.Specification{specification.ByPageID{PageID: e.page.Id}}, specs...)
	n, err := e.uow().MessageRepository().Count(context.Background(), specs...)
	require.NoError(t, err)
	return n
}
