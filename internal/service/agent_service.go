// FILE: internal/service/agent_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/repository/unitofwork"
	"ai-workspace-be/pkg/agentrunner"
	"ai-workspace-be/pkg/events"
	"ai-workspace-be/pkg/orchestrator"

	"github.com/google/uuid"
)

// FallbackReply is saved when the model cannot answer, so that no user
// message is left without a reply.
const FallbackReply = "Sorry, I couldn't come up with a response right now. Please try again in a moment."

const defaultAgentTimeout = 45 * time.Second

type IAgentService interface {
	Create(ctx context.Context, ownerId, pageId uuid.UUID, req *dto.CreateAgentRequest) (*dto.AgentResponse, error)
	GetAll(ctx context.Context, ownerId, pageId uuid.UUID) ([]*dto.AgentResponse, error)
	Execute(ctx context.Context, ownerId, pageId, agentId uuid.UUID, req *dto.ExecuteAgentRequest) (*dto.ExecuteAgentResponse, error)
}

type agentService struct {
	uowFactory       unitofwork.RepositoryFactory
	orchestrator     *orchestrator.Orchestrator
	runner           *agentrunner.Runner
	publisherService IPublisherService
	logger           logger.ILogger
	agentLogger      logger.ILogger
	timeout          time.Duration
}

func NewAgentService(
	uowFactory unitofwork.RepositoryFactory,
	orchestrator *orchestrator.Orchestrator,
	runner *agentrunner.Runner,
	publisherService IPublisherService,
	logger logger.ILogger,
	agentLogger logger.ILogger,
	timeout time.Duration,
) IAgentService {
	if timeout <= 0 {
		timeout = defaultAgentTimeout
	}
	return &agentService{
		uowFactory:       uowFactory,
		orchestrator:     orchestrator,
		runner:           runner,
		publisherService: publisherService,
		logger:           logger,
		agentLogger:      agentLogger,
		timeout:          timeout,
	}
}

type agentSpec struct {
	Name          string
	Description   string
	Role          string
	Tone          string
	Creativity    float64
	Verbosity     string
	MemoryEnabled bool
}

// newAgent validates a persona and builds the agent row for it.
func newAgent(pageId uuid.UUID, featureId *uuid.UUID, spec agentSpec) (*entity.Agent, error) {
	name := strings.TrimSpace(spec.Name)
	role := strings.TrimSpace(spec.Role)
	if name == "" {
		return nil, dto.NewValidationError("name", "is required")
	}
	if role == "" {
		return nil, dto.NewValidationError("role", "is required")
	}
	if spec.Creativity < 0 || spec.Creativity > 1 {
		return nil, dto.NewValidationError("creativity", "must be between 0 and 1")
	}

	verbosity := spec.Verbosity
	switch verbosity {
	case "":
		verbosity = entity.VerbosityBalanced
	case entity.VerbosityConcise, entity.VerbosityBalanced, entity.VerbosityDetailed:
	default:
		return nil, dto.NewValidationError("verbosity", "must be one of [concise balanced detailed]")
	}

	now := time.Now()
	return &entity.Agent{
		Id:            uuid.New(),
		PageId:        pageId,
		FeatureId:     featureId,
		Name:          name,
		Description:   strings.TrimSpace(spec.Description),
		Role:          role,
		Tone:          strings.TrimSpace(spec.Tone),
		Creativity:    spec.Creativity,
		Verbosity:     verbosity,
		MemoryEnabled: spec.MemoryEnabled,
		Stage:         entity.DefaultAgentStage,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (c *agentService) Create(ctx context.Context, ownerId, pageId uuid.UUID, req *dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}

	spec := agentSpec{
		Name:          req.Name,
		Description:   req.Description,
		Role:          req.Role,
		Tone:          req.Tone,
		Creativity:    0.5,
		Verbosity:     req.Verbosity,
		MemoryEnabled: true,
	}
	if req.Creativity != nil {
		spec.Creativity = *req.Creativity
	}
	if req.MemoryEnabled != nil {
		spec.MemoryEnabled = *req.MemoryEnabled
	}

	var feat *entity.Feature
	if req.FeatureId != nil {
		var err error
		feat, err = uow.FeatureRepository().FindOne(ctx,
			specification.ByID{ID: *req.FeatureId},
			specification.ByPageID{PageID: pageId},
		)
		if err != nil {
			return nil, err
		}
		if feat == nil {
			return nil, dto.NewNotFoundError("feature", *req.FeatureId)
		}
	}

	agent, err := newAgent(pageId, req.FeatureId, spec)
	if err != nil {
		return nil, err
	}
	if err := uow.AgentRepository().Create(ctx, agent); err != nil {
		return nil, err
	}

	if feat != nil && !feat.HasAgent(agent.Id) {
		feat.AgentIds = append(feat.AgentIds, agent.Id)
		feat.UpdatedAt = time.Now()
		if err := uow.FeatureRepository().Update(ctx, feat); err != nil {
			return nil, fmt.Errorf("bind agent to feature: %w", err)
		}
	}

	touchPage(ctx, uow, c.logger, pageId)

	res := toAgentResponse(agent)
	return &res, nil
}

func (c *agentService) GetAll(ctx context.Context, ownerId, pageId uuid.UUID) ([]*dto.AgentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}

	agents, err := uow.AgentRepository().FindAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		res := toAgentResponse(a)
		result = append(result, &res)
	}
	return result, nil
}

// Execute runs one turn. Order: save the user message, assemble context,
// call the model, apply a stage change, save the reply. Any failure after
// the user message is saved ends in a fallback reply instead of an error.
func (c *agentService) Execute(ctx context.Context, ownerId, pageId, agentId uuid.UUID, req *dto.ExecuteAgentRequest) (*dto.ExecuteAgentResponse, error) {
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return nil, dto.NewValidationError("input", "is required")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}

	allowed, err := c.orchestrator.CanAgentRespond(ctx, pageId, agentId)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, &dto.ForbiddenError{Message: "agent is not available on this page"}
	}

	userMsg := &entity.Message{
		Id:        uuid.New(),
		PageId:    pageId,
		AgentId:   &agentId,
		Role:      entity.MessageRoleUser,
		Content:   input,
		Source:    entity.MessageSourceChat,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}

	started := time.Now()
	result, runErr := c.run(ctx, pageId, agentId, userMsg)

	res := &dto.ExecuteAgentResponse{UserMessage: toMessageResponse(userMsg)}
	replyText := FallbackReply
	if runErr != nil {
		res.Fallback = true
		c.agentLogger.Error("AGENT", "CollaboratorError: falling back", map[string]interface{}{
			"page_id":  pageId,
			"agent_id": agentId,
			"error":    runErr.Error(),
			"elapsed":  time.Since(started).String(),
		})
	} else {
		replyText = result.Response
		res.NewStage = result.NewStage
	}

	// The reply is written even when the caller went away.
	saveCtx := context.WithoutCancel(ctx)

	if res.NewStage != "" {
		c.applyStage(saveCtx, uow, pageId, agentId, result)
	}

	replyAt := time.Now()
	if !replyAt.After(userMsg.CreatedAt) {
		replyAt = userMsg.CreatedAt.Add(time.Microsecond)
	}
	reply := &entity.Message{
		Id:        uuid.New(),
		PageId:    pageId,
		AgentId:   &agentId,
		Role:      entity.MessageRoleAgent,
		Content:   replyText,
		Source:    entity.MessageSourceChat,
		CreatedAt: replyAt,
	}
	if err := uow.MessageRepository().Create(saveCtx, reply); err != nil {
		return nil, fmt.Errorf("save agent reply: %w", err)
	}
	res.Reply = toMessageResponse(reply)

	touchPage(saveCtx, uow, c.logger, pageId)

	c.agentLogger.Info("AGENT", "Agent executed", map[string]interface{}{
		"page_id":   pageId,
		"agent_id":  agentId,
		"fallback":  res.Fallback,
		"new_stage": res.NewStage,
		"elapsed":   time.Since(started).String(),
	})
	return res, nil
}

type stageResult struct {
	from string
	*agentrunner.Result
}

func (c *agentService) run(ctx context.Context, pageId, agentId uuid.UUID, userMsg *entity.Message) (*stageResult, error) {
	// The turn's own message is the runner input, not history.
	actx, err := c.orchestrator.LoadAgentContext(ctx, pageId, agentId, userMsg.Id)
	if err != nil {
		return nil, fmt.Errorf("load agent context: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.runner.Run(runCtx, agentrunner.Request{
		Agent:   actx.Agent,
		Input:   userMsg.Content,
		History: actx.History,
		Page:    actx.Page,
		Facts:   actx.FeatureFacts,
	})
	if err != nil {
		return nil, err
	}
	return &stageResult{from: actx.Agent.Stage, Result: result}, nil
}

func (c *agentService) applyStage(ctx context.Context, uow unitofwork.UnitOfWork, pageId, agentId uuid.UUID, result *stageResult) {
	if err := uow.AgentRepository().UpdateStage(ctx, agentId, result.NewStage); err != nil {
		c.logger.Warn("AGENT", "Failed to update agent stage", map[string]interface{}{
			"agent_id": agentId,
			"stage":    result.NewStage,
			"error":    err.Error(),
		})
		return
	}
	publishEvent(ctx, c.publisherService, c.logger, events.NewAgentStageChanged(pageId, agentId, result.from, result.NewStage))
}
