package controller

import (
	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/pkg/serverutils"
	"ai-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	GetMessages(ctx *fiber.Ctx) error
	ClearPageMessages(ctx *fiber.Ctx) error
	ClearAgentMessages(ctx *fiber.Ctx) error
}

type messageController struct {
	service service.IMessageService
}

func NewMessageController(service service.IMessageService) IMessageController {
	return &messageController{service: service}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	r.Get(":pageId/messages", c.GetMessages)
	r.Delete(":pageId/messages", c.ClearPageMessages)
	r.Delete(":pageId/agents/:agentId/messages", c.ClearAgentMessages)
}

// GetMessages returns page-level memory, or one agent's thread when the
// agent_id query parameter is set.
func (c *messageController) GetMessages(ctx *fiber.Ctx) error {
	ownerId, pageId, err := ownerAndPage(ctx)
	if err != nil {
		return err
	}

	var agentId *uuid.UUID
	if raw := ctx.Query("agent_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return dto.NewValidationError("agent_id", "must be a valid UUID")
		}
		agentId = &id
	}

	res, err := c.service.GetMessages(ctx.UserContext(), ownerId, pageId, agentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get messages", res))
}

func (c *messageController) ClearPageMessages(ctx *fiber.Ctx) error {
	ownerId, pageId, err := ownerAndPage(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ClearPageMessages(ctx.UserContext(), ownerId, pageId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear page messages", res))
}

func (c *messageController) ClearAgentMessages(ctx *fiber.Ctx) error {
	ownerId, pageId, agentId, err := agentParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ClearAgentMessages(ctx.UserContext(), ownerId, pageId, agentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear agent messages", res))
}
