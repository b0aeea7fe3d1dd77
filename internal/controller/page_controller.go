package controller

import (
	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/pkg/serverutils"
	"ai-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type pageController struct {
	service service.IPageService
}

func NewPageController(service service.IPageService) IPageController {
	return &pageController{service: service}
}

// RegisterRoutes expects r to be the authenticated /page/v1 group.
func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("", c.GetAll)
	r.Post("", c.Create)
	r.Get(":pageId", c.Show)
}

func (c *pageController) Create(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), ownerId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create page", res))
}

func (c *pageController) GetAll(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.UserContext(), ownerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all page", res))
}

func (c *pageController) Show(ctx *fiber.Ctx) error {
	ownerId, pageId, err := ownerAndPage(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), ownerId, pageId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show page", res))
}
