package controller

import (
	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/pkg/serverutils"
	"ai-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Execute(ctx *fiber.Ctx) error
}

type agentController struct {
	service service.IAgentService
}

func NewAgentController(service service.IAgentService) IAgentController {
	return &agentController{service: service}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group(":pageId/agents")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post(":agentId/execute", c.Execute)
}

func (c *agentController) Create(ctx *fiber.Ctx) error {
	ownerId, pageId, err := ownerAndPage(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateAgentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), ownerId, pageId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create agent", res))
}

func (c *agentController) GetAll(ctx *fiber.Ctx) error {
	ownerId, pageId, err := ownerAndPage(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.UserContext(), ownerId, pageId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all agent", res))
}

func (c *agentController) Execute(ctx *fiber.Ctx) error {
	ownerId, pageId, agentId, err := agentParams(ctx)
	if err != nil {
		return err
	}

	var req dto.ExecuteAgentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Execute(ctx.UserContext(), ownerId, pageId, agentId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success execute agent", res))
}

func agentParams(ctx *fiber.Ctx) (ownerId, pageId, agentId uuid.UUID, err error) {
	if ownerId, pageId, err = ownerAndPage(ctx); err != nil {
		return
	}
	agentId, err = serverutils.ParamUUID(ctx, "agentId")
	return
}
