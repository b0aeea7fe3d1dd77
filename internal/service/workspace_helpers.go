package service

import (
	"context"
	"time"

	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/entity"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/repository/unitofwork"
	"ai-workspace-be/pkg/events"

	"github.com/google/uuid"
)

// findOwnedPage returns NotFoundError both for missing pages and for pages
// owned by someone else.
func findOwnedPage(ctx context.Context, uow unitofwork.UnitOfWork, ownerId, pageId uuid.UUID) (*entity.Page, error) {
	page, err := uow.PageRepository().FindOne(ctx,
		specification.ByID{ID: pageId},
		specification.OwnedBy{OwnerID: ownerId},
	)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, dto.NewNotFoundError("page", pageId)
	}
	return page, nil
}

func touchPage(ctx context.Context, uow unitofwork.UnitOfWork, log logger.ILogger, pageId uuid.UUID) {
	if err := uow.PageRepository().Touch(ctx, pageId, time.Now()); err != nil {
		log.Warn("PAGE", "Failed to touch page", map[string]interface{}{
			"page_id": pageId,
			"error":   err.Error(),
		})
	}
}

// publishEvent is best effort: the operation already happened.
func publishEvent(ctx context.Context, publisher IPublisherService, log logger.ILogger, evt events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.Warn("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}

func toAgentResponse(a *entity.Agent) dto.AgentResponse {
	return dto.AgentResponse{
		Id:            a.Id,
		PageId:        a.PageId,
		FeatureId:     a.FeatureId,
		Name:          a.Name,
		Description:   a.Description,
		Role:          a.Role,
		Tone:          a.Tone,
		Creativity:    a.Creativity,
		Verbosity:     a.Verbosity,
		MemoryEnabled: a.MemoryEnabled,
		Stage:         a.Stage,
		CreatedAt:     a.CreatedAt,
	}
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		Id:        m.Id,
		PageId:    m.PageId,
		AgentId:   m.AgentId,
		FeatureId: m.FeatureId,
		Role:      m.Role,
		Content:   m.Content,
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
	}
}

func toFeatureResponse(f *entity.Feature, agents []*entity.Agent) dto.FeatureResponse {
	res := dto.FeatureResponse{
		Id:            f.Id,
		PageId:        f.PageId,
		Name:          f.Name,
		Type:          f.Type,
		Category:      f.Category,
		UIConfig:      f.UIConfig,
		Config:        f.Config,
		AgentIds:      f.AgentIds,
		Agents:        make([]dto.AgentResponse, 0, len(agents)),
		OriginalInput: f.OriginalInput,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
	if res.AgentIds == nil {
		res.AgentIds = []uuid.UUID{}
	}
	for _, a := range agents {
		res.Agents = append(res.Agents, toAgentResponse(a))
	}
	return res
}
