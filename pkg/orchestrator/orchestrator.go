// FILE: pkg/orchestrator/orchestrator.go
// PURPOSE: Assembles page and agent execution context, gates agent execution
// and reacts to feature lifecycle events.

package orchestrator

import (
	"context"
	"fmt"
	"time"

	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/repository/unitofwork"
	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/feature/featuredata"
	"ai-workspace-be/pkg/feature/summary"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit    = 20
	defaultPageMemoryLimit = 20
)

// FeatureSummary is the status of one feature as seen by agents and the UI.
type FeatureSummary struct {
	FeatureId   uuid.UUID           `json:"featureId"`
	Name        string              `json:"name"`
	Type        feature.FeatureType `json:"type"`
	Summary     string              `json:"summary"`
	Insights    []string            `json:"insights"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
	Regenerated bool                `json:"regenerated"`
}

type PageContext struct {
	PageId      uuid.UUID
	Messages    []*entity.Message
	FeatureData []*entity.FeatureData
	Summaries   []FeatureSummary
}

// FeatureFacts maps a feature type to its aggregated statistics.
type FeatureFacts map[feature.FeatureType]map[string]int

type AgentContext struct {
	Agent        *entity.Agent
	History      []*entity.Message
	Page         *PageContext
	FeatureFacts FeatureFacts
}

type Option func(*Orchestrator)

func WithHistoryLimit(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.historyLimit = n
		}
	}
}

func WithPageMemoryLimit(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.pageMemoryLimit = n
		}
	}
}

// Orchestrator reads through the repositories on every call. It keeps no
// state between calls besides its configuration.
type Orchestrator struct {
	uowFactory      unitofwork.RepositoryFactory
	summarizer      *summary.Summarizer
	logger          logger.ILogger
	historyLimit    int
	pageMemoryLimit int
}

func New(uowFactory unitofwork.RepositoryFactory, summarizer *summary.Summarizer, logger logger.ILogger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		uowFactory:      uowFactory,
		summarizer:      summarizer,
		logger:          logger,
		historyLimit:    defaultHistoryLimit,
		pageMemoryLimit: defaultPageMemoryLimit,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadPageContext returns page-level memory, raw feature data and the current
// summary of every feature on the page. Stale summaries are regenerated.
func (o *Orchestrator) LoadPageContext(ctx context.Context, pageId uuid.UUID) (*PageContext, error) {
	uow := o.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.PageLevel{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: o.pageMemoryLimit},
	)
	if err != nil {
		return nil, fmt.Errorf("load page memory: %w", err)
	}

	summaries, data, err := o.refreshAll(ctx, uow, pageId)
	if err != nil {
		return nil, err
	}

	return &PageContext{
		PageId:      pageId,
		Messages:    oldestFirst(messages),
		FeatureData: data,
		Summaries:   summaries,
	}, nil
}

// LoadAgentContext returns the agent's own thread (oldest first, capped), the
// page context and feature facts computed from current data. Messages listed
// in exclude never appear in the thread and do not count against the cap.
func (o *Orchestrator) LoadAgentContext(ctx context.Context, pageId, agentId uuid.UUID, exclude ...uuid.UUID) (*AgentContext, error) {
	uow := o.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: agentId},
		specification.ByPageID{PageID: pageId},
	)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, dto.NewNotFoundError("agent", agentId)
	}

	history := make([]*entity.Message, 0)
	if agent.MemoryEnabled {
		history, err = uow.MessageRepository().FindAll(ctx,
			specification.ByPageID{PageID: pageId},
			specification.ByAgentID{AgentID: agentId},
			specification.ExcludeIDs{IDs: exclude},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Limit{N: o.historyLimit},
		)
		if err != nil {
			return nil, fmt.Errorf("load agent history: %w", err)
		}
		history = oldestFirst(history)
	}

	pageCtx, err := o.LoadPageContext(ctx, pageId)
	if err != nil {
		return nil, err
	}

	facts, err := o.FeatureFacts(ctx, pageId)
	if err != nil {
		return nil, err
	}

	return &AgentContext{
		Agent:        agent,
		History:      history,
		Page:         pageCtx,
		FeatureFacts: facts,
	}, nil
}

// FeatureFacts aggregates per-type statistics across the page's features.
func (o *Orchestrator) FeatureFacts(ctx context.Context, pageId uuid.UUID) (FeatureFacts, error) {
	uow := o.uowFactory.NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAll(ctx, specification.ByPageID{PageID: pageId})
	if err != nil {
		return nil, err
	}
	dataByFeature, _, err := loadData(ctx, uow, pageId)
	if err != nil {
		return nil, err
	}

	facts := make(FeatureFacts)
	for _, f := range features {
		payload, err := decodePayload(f, dataByFeature[f.Id])
		if err != nil {
			o.logger.Warn("ORCHESTRATOR", "Skipping unreadable feature data", map[string]interface{}{
				"feature_id": f.Id,
				"error":      err.Error(),
			})
			continue
		}
		merged, ok := facts[f.Type]
		if !ok {
			merged = make(map[string]int)
			facts[f.Type] = merged
		}
		for k, v := range summary.Facts(f.Type, payload) {
			merged[k] += v
		}
	}
	return facts, nil
}

// CanAgentRespond is the execution gate: the agent must exist on this page.
// It does not serialize concurrent runs of the same agent.
func (o *Orchestrator) CanAgentRespond(ctx context.Context, pageId, agentId uuid.UUID) (bool, error) {
	count, err := o.uowFactory.NewUnitOfWork(ctx).AgentRepository().Count(ctx,
		specification.ByID{ID: agentId},
		specification.ByPageID{PageID: pageId},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RefreshSummary returns the summary of one feature, regenerating it first
// when stale.
func (o *Orchestrator) RefreshSummary(ctx context.Context, pageId, featureId uuid.UUID) (*FeatureSummary, error) {
	uow := o.uowFactory.NewUnitOfWork(ctx)

	f, err := uow.FeatureRepository().FindOne(ctx,
		specification.ByID{ID: featureId},
		specification.ByPageID{PageID: pageId},
	)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, dto.NewNotFoundError("feature", featureId)
	}

	data, err := uow.FeatureDataRepository().FindOne(ctx,
		specification.ByPageID{PageID: pageId},
		specification.ByFeatureID{FeatureID: featureId},
	)
	if err != nil {
		return nil, err
	}

	s, err := o.refresh(ctx, uow, f, data)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// HandleFeatureEvent regenerates stale summaries for every feature on the
// page and records the event as one page-level message.
func (o *Orchestrator) HandleFeatureEvent(ctx context.Context, pageId uuid.UUID, f *entity.Feature, eventType string, payload map[string]interface{}) error {
	uow := o.uowFactory.NewUnitOfWork(ctx)

	if _, _, err := o.refreshAll(ctx, uow, pageId); err != nil {
		return err
	}

	msg := &entity.Message{
		Id:        uuid.New(),
		PageId:    pageId,
		FeatureId: &f.Id,
		Role:      entity.MessageRoleAgent,
		Content:   EventMessage(eventType, f.Name, payload),
		Source:    entity.MessageSourceFeature,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, msg); err != nil {
		return fmt.Errorf("record feature event: %w", err)
	}

	o.logger.Debug("ORCHESTRATOR", "Feature event handled", map[string]interface{}{
		"page_id":    pageId,
		"feature_id": f.Id,
		"event":      eventType,
	})
	return nil
}

// RegenerateSummaries refreshes every feature on the page without recording
// a message.
func (o *Orchestrator) RegenerateSummaries(ctx context.Context, pageId uuid.UUID) ([]FeatureSummary, error) {
	summaries, _, err := o.refreshAll(ctx, o.uowFactory.NewUnitOfWork(ctx), pageId)
	return summaries, err
}

func (o *Orchestrator) refreshAll(ctx context.Context, uow unitofwork.UnitOfWork, pageId uuid.UUID) ([]FeatureSummary, []*entity.FeatureData, error) {
	features, err := uow.FeatureRepository().FindAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("load features: %w", err)
	}

	dataByFeature, all, err := loadData(ctx, uow, pageId)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]FeatureSummary, 0, len(features))
	for _, f := range features {
		s, err := o.refresh(ctx, uow, f, dataByFeature[f.Id])
		if err != nil {
			// One unreadable feature must not hide the others.
			o.logger.Warn("ORCHESTRATOR", "Summary refresh failed", map[string]interface{}{
				"feature_id": f.Id,
				"error":      err.Error(),
			})
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, all, nil
}

func (o *Orchestrator) refresh(ctx context.Context, uow unitofwork.UnitOfWork, f *entity.Feature, data *entity.FeatureData) (FeatureSummary, error) {
	payload, err := decodePayload(f, data)
	if err != nil {
		return FeatureSummary{}, err
	}

	s := FeatureSummary{
		FeatureId: f.Id,
		Name:      f.Name,
		Type:      f.Type,
		Insights:  o.summarizer.Insights(f.Type, payload),
	}

	// Features without a data record yet get a computed summary that is not stored.
	if data == nil {
		s.Summary = o.summarizer.Summarize(f.Type, payload)
		return s, nil
	}

	if !summary.IsStale(data.AiSummary, data.AiSummaryUpdatedAt, data.UpdatedAt) {
		s.Summary = data.AiSummary
		s.UpdatedAt = data.AiSummaryUpdatedAt
		return s, nil
	}

	text := o.summarizer.Summarize(f.Type, payload)
	now := o.summarizer.Now()
	if err := uow.FeatureDataRepository().SaveSummary(ctx, data.Id, text, now); err != nil {
		return FeatureSummary{}, fmt.Errorf("save summary: %w", err)
	}
	data.AiSummary = text
	data.AiSummaryUpdatedAt = &now

	s.Summary = text
	s.UpdatedAt = &now
	s.Regenerated = true
	return s, nil
}

func loadData(ctx context.Context, uow unitofwork.UnitOfWork, pageId uuid.UUID) (map[uuid.UUID]*entity.FeatureData, []*entity.FeatureData, error) {
	all, err := uow.FeatureDataRepository().FindAll(ctx, specification.ByPageID{PageID: pageId})
	if err != nil {
		return nil, nil, fmt.Errorf("load feature data: %w", err)
	}
	byFeature := make(map[uuid.UUID]*entity.FeatureData, len(all))
	for _, d := range all {
		byFeature[d.FeatureId] = d
	}
	return byFeature, all, nil
}

func decodePayload(f *entity.Feature, data *entity.FeatureData) (featuredata.Payload, error) {
	if data == nil {
		return featuredata.Decode(f.Type, nil)
	}
	return featuredata.Decode(f.Type, data.Data)
}

// oldestFirst reverses a newest-first page of messages in place.
func oldestFirst(messages []*entity.Message) []*entity.Message {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages
}
