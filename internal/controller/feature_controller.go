package controller

import (
	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/pkg/serverutils"
	"ai-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	UpdateData(ctx *fiber.Ctx) error
	GetData(ctx *fiber.Ctx) error
	GetInsights(ctx *fiber.Ctx) error
}

type featureController struct {
	service service.IFeatureService
}

func NewFeatureController(service service.IFeatureService) IFeatureController {
	return &featureController{service: service}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group(":pageId/features")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Delete(":featureId", c.Delete)
	h.Put(":featureId/data", c.UpdateData)
	h.Get(":featureId/data", c.GetData)
	h.Get(":featureId/insights", c.GetInsights)
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	ownerId, pageId, err := ownerAndPage(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateFeatureRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), ownerId, pageId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create feature", res))
}

func (c *featureController) GetAll(ctx *fiber.Ctx) error {
	ownerId, pageId, err := ownerAndPage(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.UserContext(), ownerId, pageId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all feature", res))
}

// Delete answers 404 with the zero-count report when the feature was already
// gone, so clients can still see which id-keyed steps ran.
func (c *featureController) Delete(ctx *fiber.Ctx) error {
	ownerId, pageId, featureId, err := featureParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Delete(ctx.UserContext(), ownerId, pageId, featureId, ctx.QueryBool("delete_agents", false))
	if err != nil {
		return err
	}

	if !res.Found {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.BaseResponse[*dto.DeleteFeatureResponse]{
			Success: false,
			Code:    fiber.StatusNotFound,
			Message: "Feature not found",
			Data:    res,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete feature", res))
}

func (c *featureController) UpdateData(ctx *fiber.Ctx) error {
	ownerId, pageId, featureId, err := featureParams(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateFeatureDataRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateData(ctx.UserContext(), ownerId, pageId, featureId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update feature data", res))
}

func (c *featureController) GetData(ctx *fiber.Ctx) error {
	ownerId, pageId, featureId, err := featureParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetData(ctx.UserContext(), ownerId, pageId, featureId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get feature data", res))
}

func (c *featureController) GetInsights(ctx *fiber.Ctx) error {
	ownerId, pageId, featureId, err := featureParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetInsights(ctx.UserContext(), ownerId, pageId, featureId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get feature insights", res))
}

func featureParams(ctx *fiber.Ctx) (ownerId, pageId, featureId uuid.UUID, err error) {
	if ownerId, pageId, err = ownerAndPage(ctx); err != nil {
		return
	}
	featureId, err = serverutils.ParamUUID(ctx, "featureId")
	return
}
