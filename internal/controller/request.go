package controller

import (
	"ai-workspace-be/internal/dto"
	"ai-workspace-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseBody decodes and validates a JSON request body.
func parseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return dto.NewValidationError("", "invalid request body")
	}
	return serverutils.ValidateRequest(req)
}

func ownerAndPage(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	ownerId, err := serverutils.UserID(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	pageId, err := serverutils.ParamUUID(ctx, "pageId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return ownerId, pageId, nil
}
