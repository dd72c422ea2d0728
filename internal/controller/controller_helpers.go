package controller

import (
	"buildhive-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserId reads the authenticated user id set by the JWT
// middleware. Routes behind JwtMiddleware can rely on it being set.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok || userIdStr == "" {
		return uuid.Nil, serverutils.Unauthorized("Missing token")
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, serverutils.Unauthorized("Invalid token")
	}
	return userId, nil
}

// optionalUserId returns nil for anonymous requests.
func optionalUserId(ctx *fiber.Ctx) *uuid.UUID {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok || userIdStr == "" {
		return nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}
	return &userId
}

func parseIdParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("Invalid id")
	}
	return id, nil
}
