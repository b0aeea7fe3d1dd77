// FILE: internal/service/feature_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/repository/unitofwork"
	"ai-workspace-be/pkg/events"
	"ai-workspace-be/pkg/feature"
	"ai-workspace-be/pkg/feature/featuredata"
	"ai-workspace-be/pkg/feature/intent"
	"ai-workspace-be/pkg/feature/planner"
	"ai-workspace-be/pkg/feature/summary"
	"ai-workspace-be/pkg/feature/template"
	"ai-workspace-be/pkg/orchestrator"

	"github.com/google/uuid"
)

type IFeatureService interface {
	Create(ctx context.Context, ownerId, pageId uuid.UUID, req *dto.CreateFeatureRequest) (*dto.CreateFeatureResponse, error)
	GetAll(ctx context.Context, ownerId, pageId uuid.UUID) ([]*dto.FeatureResponse, error)
	Delete(ctx context.Context, ownerId, pageId, featureId uuid.UUID, deleteAgents bool) (*dto.DeleteFeatureResponse, error)
	UpdateData(ctx context.Context, ownerId, pageId, featureId uuid.UUID, req *dto.UpdateFeatureDataRequest) (*dto.FeatureDataResponse, error)
	GetData(ctx context.Context, ownerId, pageId, featureId uuid.UUID) (*dto.FeatureDataResponse, error)
	GetInsights(ctx context.Context, ownerId, pageId, featureId uuid.UUID) (*dto.FeatureInsightsResponse, error)
}

type featureService struct {
	uowFactory       unitofwork.RepositoryFactory
	catalog          *template.Catalog
	nameOverrides    []planner.NameOverride
	orchestrator     *orchestrator.Orchestrator
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *template.Catalog,
	orchestrator *orchestrator.Orchestrator,
	publisherService IPublisherService,
	logger logger.ILogger,
) IFeatureService {
	return &featureService{
		uowFactory:       uowFactory,
		catalog:          catalog,
		nameOverrides:    planner.DefaultNameOverrides,
		orchestrator:     orchestrator,
		publisherService: publisherService,
		logger:           logger,
	}
}

// Create provisions a feature from free text: classify, resolve the template,
// plan, create the template agents one by one, then persist the feature and
// its plan. Agent failures are reported, not fatal.
func (c *featureService) Create(ctx context.Context, ownerId, pageId uuid.UUID, req *dto.CreateFeatureRequest) (*dto.CreateFeatureResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, dto.NewValidationError("text", "is required")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}

	detected := intent.Classify(text)
	tmpl, ok := c.catalog.Get(detected.Type)
	if !ok {
		return nil, &dto.UnsupportedTypeError{Type: string(detected.Type)}
	}

	plan := planner.BuildPlan(text, detected, tmpl)
	plan.FeatureName = planner.ApplyNameOverrides(text, plan.FeatureName, c.nameOverrides)

	featureId := uuid.New()
	agents, report := c.provisionAgents(ctx, uow, pageId, featureId, tmpl.RequiredAgents)

	agentIds := make([]uuid.UUID, 0, len(agents))
	for _, a := range agents {
		agentIds = append(agentIds, a.Id)
	}

	config := make(map[string]interface{}, len(tmpl.DefaultConfig)+1)
	for k, v := range tmpl.DefaultConfig {
		config[k] = v
	}
	config["plan"] = plan

	now := time.Now()
	feat := &entity.Feature{
		Id:       featureId,
		PageId:   pageId,
		Name:     plan.FeatureName,
		Type:     detected.Type,
		Category: detected.Category,
		UIConfig: template.UIConfig{
			Layout:     tmpl.UIConfig.Layout,
			Components: tmpl.UIConfig.Components,
			Actions:    mergeActions(tmpl.UIConfig.Actions, detected.Requirements.Actions),
		},
		Config:        config,
		AgentIds:      agentIds,
		OriginalInput: text,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uow.FeatureRepository().Create(ctx, feat); err != nil {
		c.discardAgents(ctx, uow, pageId, agentIds)
		return nil, fmt.Errorf("create feature: %w", err)
	}

	featurePlan := &entity.FeaturePlan{
		Id:        uuid.New(),
		PageId:    pageId,
		FeatureId: featureId,
		Plan:      plan,
		CreatedAt: now,
	}
	if err := uow.FeaturePlanRepository().Create(ctx, featurePlan); err != nil {
		// The feature config carries a copy of the plan, so the feature stays usable.
		c.logger.Error("PROVISIONER", "Failed to persist feature plan", map[string]interface{}{
			"feature_id": featureId,
			"error":      err.Error(),
		})
	}

	touchPage(ctx, uow, c.logger, pageId)

	evt := events.NewFeatureCreated(pageId, featureId, string(feat.Type), feat.Name, agentIds)
	if err := c.orchestrator.HandleFeatureEvent(ctx, pageId, feat, evt.EventType(), evt.Payload()); err != nil {
		c.logger.Warn("PROVISIONER", "Feature event handling failed", map[string]interface{}{
			"feature_id": featureId,
			"error":      err.Error(),
		})
	}
	publishEvent(ctx, c.publisherService, c.logger, evt)

	c.logger.Info("PROVISIONER", "Feature provisioned", map[string]interface{}{
		"page_id":      pageId,
		"feature_id":   featureId,
		"type":         feat.Type,
		"planner_type": plan.PlannerType,
		"agents":       len(agentIds),
		"partial":      report.Partial,
	})

	rendered := plan
	rendered.UI = feature.RenderableBlocks(plan.UI)

	return &dto.CreateFeatureResponse{
		Feature:      toFeatureResponse(feat, agents),
		Plan:         rendered,
		Intent:       detected,
		Provisioning: report,
	}, nil
}

func (c *featureService) provisionAgents(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	pageId, featureId uuid.UUID,
	blueprints []template.AgentBlueprint,
) ([]*entity.Agent, dto.ProvisioningReport) {
	report := dto.ProvisioningReport{Agents: make([]dto.AgentProvisionResult, 0, len(blueprints))}
	created := make([]*entity.Agent, 0, len(blueprints))

	for _, bp := range blueprints {
		agent, err := newAgent(pageId, &featureId, agentSpec{
			Name:          bp.Name,
			Description:   bp.Description,
			Role:          bp.Role,
			Tone:          bp.Tone,
			Creativity:    bp.Creativity,
			Verbosity:     bp.Verbosity,
			MemoryEnabled: bp.MemoryEnabled,
		})
		if err == nil {
			err = uow.AgentRepository().Create(ctx, agent)
		}
		if err != nil {
			c.logger.Warn("PROVISIONER", "PartialProvisioningWarning: agent creation failed", map[string]interface{}{
				"feature_id": featureId,
				"blueprint":  bp.Name,
				"error":      err.Error(),
			})
			report.Partial = true
			report.Agents = append(report.Agents, dto.AgentProvisionResult{
				Blueprint: bp.Name,
				Status:    dto.ProvisionFailed,
				Reason:    err.Error(),
			})
			continue
		}

		id := agent.Id
		created = append(created, agent)
		report.Agents = append(report.Agents, dto.AgentProvisionResult{
			Blueprint: bp.Name,
			Status:    dto.ProvisionCreated,
			AgentId:   &id,
		})
	}
	return created, report
}

// discardAgents removes agents created for a feature that could not be saved.
func (c *featureService) discardAgents(ctx context.Context, uow unitofwork.UnitOfWork, pageId uuid.UUID, ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	if _, err := uow.AgentRepository().DeleteAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.ByIDs{IDs: ids},
	); err != nil {
		c.logger.Error("PROVISIONER", "Failed to discard orphan agents", map[string]interface{}{
			"agent_ids": ids,
			"error":     err.Error(),
		})
	}
}

// mergeActions keeps template defaults first, then detected actions, without
// duplicates.
func mergeActions(defaults, detected []string) []string {
	seen := make(map[string]bool, len(defaults)+len(detected))
	merged := make([]string, 0, len(defaults)+len(detected))
	for _, list := range [][]string{defaults, detected} {
		for _, a := range list {
			if seen[a] {
				continue
			}
			seen[a] = true
			merged = append(merged, a)
		}
	}
	return merged
}

func (c *featureService) GetAll(ctx context.Context, ownerId, pageId uuid.UUID) ([]*dto.FeatureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}

	features, err := uow.FeatureRepository().FindAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	agents, err := uow.AgentRepository().FindAll(ctx, specification.ByPageID{PageID: pageId})
	if err != nil {
		return nil, err
	}
	agentsById := make(map[uuid.UUID]*entity.Agent, len(agents))
	for _, a := range agents {
		agentsById[a.Id] = a
	}

	result := make([]*dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		bound := make([]*entity.Agent, 0, len(f.AgentIds))
		for _, id := range f.AgentIds {
			if a, ok := agentsById[id]; ok {
				bound = append(bound, a)
			}
		}
		res := toFeatureResponse(f, bound)
		result = append(result, &res)
	}
	return result, nil
}

// Delete runs the cascade. Every step is keyed so that re-running it after a
// partial failure only removes what is left.
func (c *featureService) Delete(ctx context.Context, ownerId, pageId, featureId uuid.UUID, deleteAgents bool) (*dto.DeleteFeatureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}

	feat, err := uow.FeatureRepository().FindOne(ctx,
		specification.ByID{ID: featureId},
		specification.ByPageID{PageID: pageId},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.DeleteFeatureResponse{FeatureId: featureId, Found: feat != nil}
	byFeature := []specification.Specification{
		specification.ByPageID{PageID: pageId},
		specification.ByFeatureID{FeatureID: featureId},
	}

	if res.FeatureDataDeleted, err = uow.FeatureDataRepository().DeleteAll(ctx, byFeature...); err != nil {
		return nil, c.cascadeFailed(featureId, "feature_data", err)
	}
	if res.LinkedMessagesDeleted, err = uow.MessageRepository().DeleteAll(ctx, byFeature...); err != nil {
		return nil, c.cascadeFailed(featureId, "linked_messages", err)
	}

	if feat != nil {
		// Best effort: older event messages lack a feature reference.
		res.LegacyMessagesDeleted, err = uow.MessageRepository().DeleteAll(ctx,
			specification.ByPageID{PageID: pageId},
			specification.LegacyFeatureMessage{FeatureName: feat.Name},
		)
		if err != nil {
			return nil, c.cascadeFailed(featureId, "legacy_messages", err)
		}

		if deleteAgents && len(feat.AgentIds) > 0 {
			if res.AgentMessagesDeleted, err = uow.MessageRepository().DeleteAll(ctx,
				specification.ByPageID{PageID: pageId},
				specification.ByAgentIDs{AgentIDs: feat.AgentIds},
			); err != nil {
				return nil, c.cascadeFailed(featureId, "agent_messages", err)
			}
			if res.AgentsDeleted, err = uow.AgentRepository().DeleteAll(ctx,
				specification.ByPageID{PageID: pageId},
				specification.ByIDs{IDs: feat.AgentIds},
			); err != nil {
				return nil, c.cascadeFailed(featureId, "agents", err)
			}
		}

		if res.PlansDeleted, err = uow.FeaturePlanRepository().DeleteByFeatureId(ctx, featureId); err != nil {
			return nil, c.cascadeFailed(featureId, "feature_plan", err)
		}
		if _, err = uow.FeatureRepository().Delete(ctx, featureId); err != nil {
			return nil, c.cascadeFailed(featureId, "feature", err)
		}
	}

	touchPage(ctx, uow, c.logger, pageId)

	if feat != nil {
		publishEvent(ctx, c.publisherService, c.logger, events.NewFeatureDeleted(pageId, featureId, feat.Name, deleteAgents))
		if _, err := c.orchestrator.RegenerateSummaries(ctx, pageId); err != nil {
			c.logger.Warn("CASCADE", "Summary regeneration after delete failed", map[string]interface{}{
				"page_id": pageId,
				"error":   err.Error(),
			})
		}
	}

	c.logger.Info("CASCADE", "Feature deletion finished", map[string]interface{}{
		"feature_id":      featureId,
		"found":           res.Found,
		"feature_data":    res.FeatureDataDeleted,
		"linked_messages": res.LinkedMessagesDeleted,
		"legacy_messages": res.LegacyMessagesDeleted,
		"agent_messages":  res.AgentMessagesDeleted,
		"agents":          res.AgentsDeleted,
	})
	return res, nil
}

func (c *featureService) cascadeFailed(featureId uuid.UUID, step string, err error) error {
	c.logger.Warn("CASCADE", "CascadeIncompleteWarning: deletion step failed", map[string]interface{}{
		"feature_id": featureId,
		"step":       step,
		"error":      err.Error(),
	})
	return fmt.Errorf("delete feature %s at step %s: %w", featureId, step, err)
}

// UpdateData replaces the feature's payload. The cached summary is cleared in
// the same write and then regenerated for every feature on the page.
func (c *featureService) UpdateData(ctx context.Context, ownerId, pageId, featureId uuid.UUID, req *dto.UpdateFeatureDataRequest) (*dto.FeatureDataResponse, error) {
	if len(req.Data) == 0 || !json.Valid(req.Data) {
		return nil, dto.NewValidationError("data", "must be valid JSON")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	feat, err := c.findFeature(ctx, uow, ownerId, pageId, featureId)
	if err != nil {
		return nil, err
	}

	payload, err := featuredata.Decode(feat.Type, req.Data)
	if err != nil {
		return nil, dto.NewValidationError("data", err.Error())
	}

	now := time.Now()
	row := &entity.FeatureData{
		Id:        uuid.New(),
		PageId:    pageId,
		FeatureId: featureId,
		Data:      req.Data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.FeatureDataRepository().Upsert(ctx, row); err != nil {
		return nil, err
	}

	evt := events.NewFeatureDataUpdated(pageId, featureId, payload.Len())
	if err := c.orchestrator.HandleFeatureEvent(ctx, pageId, feat, evt.EventType(), evt.Payload()); err != nil {
		c.logger.Warn("FEATURE", "Feature event handling failed", map[string]interface{}{
			"feature_id": featureId,
			"error":      err.Error(),
		})
	}
	publishEvent(ctx, c.publisherService, c.logger, evt)
	touchPage(ctx, uow, c.logger, pageId)

	return c.GetData(ctx, ownerId, pageId, featureId)
}

func (c *featureService) GetData(ctx context.Context, ownerId, pageId, featureId uuid.UUID) (*dto.FeatureDataResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := c.findFeature(ctx, uow, ownerId, pageId, featureId); err != nil {
		return nil, err
	}

	data, err := uow.FeatureDataRepository().FindOne(ctx,
		specification.ByPageID{PageID: pageId},
		specification.ByFeatureID{FeatureID: featureId},
	)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &dto.FeatureDataResponse{FeatureId: featureId, Data: json.RawMessage("[]")}, nil
	}

	updatedAt := data.UpdatedAt
	return &dto.FeatureDataResponse{
		FeatureId:          featureId,
		Data:               data.Data,
		AiSummary:          data.AiSummary,
		AiSummaryUpdatedAt: data.AiSummaryUpdatedAt,
		UpdatedAt:          &updatedAt,
	}, nil
}

func (c *featureService) GetInsights(ctx context.Context, ownerId, pageId, featureId uuid.UUID) (*dto.FeatureInsightsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	feat, err := c.findFeature(ctx, uow, ownerId, pageId, featureId)
	if err != nil {
		return nil, err
	}

	s, err := c.orchestrator.RefreshSummary(ctx, pageId, featureId)
	if err != nil {
		return nil, err
	}

	data, err := uow.FeatureDataRepository().FindOne(ctx,
		specification.ByPageID{PageID: pageId},
		specification.ByFeatureID{FeatureID: featureId},
	)
	if err != nil {
		return nil, err
	}
	var raw []byte
	if data != nil {
		raw = data.Data
	}
	payload, err := featuredata.Decode(feat.Type, raw)
	if err != nil {
		return nil, err
	}

	return &dto.FeatureInsightsResponse{
		FeatureId:        featureId,
		Name:             feat.Name,
		Type:             feat.Type,
		Summary:          s.Summary,
		Insights:         s.Insights,
		Facts:            summary.Facts(feat.Type, payload),
		SummaryUpdatedAt: s.UpdatedAt,
	}, nil
}

func (c *featureService) findFeature(ctx context.Context, uow unitofwork.UnitOfWork, ownerId, pageId, featureId uuid.UUID) (*entity.Feature, error) {
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}
	feat, err := uow.FeatureRepository().FindOne(ctx,
		specification.ByID{ID: featureId},
		specification.ByPageID{PageID: pageId},
	)
	if err != nil {
		return nil, err
	}
	if feat == nil {
		return nil, dto.NewNotFoundError("feature", featureId)
	}
	return feat, nil
}
