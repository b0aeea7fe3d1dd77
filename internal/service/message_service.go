package service

import (
	"context"

	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/internal/repository/specification"
	"ai-workspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMessageService interface {
	// GetMessages returns an agent thread when agentId is set, page-level
	// memory otherwise. Oldest first.
	GetMessages(ctx context.Context, ownerId, pageId uuid.UUID, agentId *uuid.UUID) ([]*dto.MessageResponse, error)
	ClearAgentMessages(ctx context.Context, ownerId, pageId, agentId uuid.UUID) (*dto.ClearMessagesResponse, error)
	ClearPageMessages(ctx context.Context, ownerId, pageId uuid.UUID) (*dto.ClearMessagesResponse, error)
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (c *messageService) GetMessages(ctx context.Context, ownerId, pageId uuid.UUID, agentId *uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{specification.ByPageID{PageID: pageId}}
	if agentId != nil {
		if err := c.requireAgent(ctx, uow, pageId, *agentId); err != nil {
			return nil, err
		}
		specs = append(specs, specification.ByAgentID{AgentID: *agentId})
	} else {
		specs = append(specs, specification.PageLevel{})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at"})

	messages, err := uow.MessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		res := toMessageResponse(m)
		result = append(result, &res)
	}
	return result, nil
}

func (c *messageService) ClearAgentMessages(ctx context.Context, ownerId, pageId, agentId uuid.UUID) (*dto.ClearMessagesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}
	if err := c.requireAgent(ctx, uow, pageId, agentId); err != nil {
		return nil, err
	}

	deleted, err := uow.MessageRepository().DeleteAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.ByAgentID{AgentID: agentId},
	)
	if err != nil {
		return nil, err
	}

	c.logger.Info("MESSAGE", "Agent thread cleared", map[string]interface{}{
		"page_id":  pageId,
		"agent_id": agentId,
		"deleted":  deleted,
	})
	return &dto.ClearMessagesResponse{Deleted: deleted}, nil
}

// ClearPageMessages wipes page-level memory. Agent threads are kept.
func (c *messageService) ClearPageMessages(ctx context.Context, ownerId, pageId uuid.UUID) (*dto.ClearMessagesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOwnedPage(ctx, uow, ownerId, pageId); err != nil {
		return nil, err
	}

	deleted, err := uow.MessageRepository().DeleteAll(ctx,
		specification.ByPageID{PageID: pageId},
		specification.PageLevel{},
	)
	if err != nil {
		return nil, err
	}

	c.logger.Info("MESSAGE", "Page memory cleared", map[string]interface{}{
		"page_id": pageId,
		"deleted": deleted,
	})
	return &dto.ClearMessagesResponse{Deleted: deleted}, nil
}

func (c *messageService) requireAgent(ctx context.Context, uow unitofwork.UnitOfWork, pageId, agentId uuid.UUID) error {
	count, err := uow.AgentRepository().Count(ctx,
		specification.ByID{ID: agentId},
		specification.ByPageID{PageID: pageId},
	)
	if err != nil {
		return err
	}
	if count == 0 {
		return dto.NewNotFoundError("agent", agentId)
	}
	return nil
}
