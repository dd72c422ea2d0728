package controller

import (
	"buildhive-be/internal/dto"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
	PublicProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	UpdateAvatar(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	// /me must register before the public wildcard.
	h.Get("/me", serverutils.JwtMiddleware, c.Me)
	h.Patch("/me", serverutils.JwtMiddleware, c.UpdateProfile)
	h.Post("/me/avatar", serverutils.JwtMiddleware, c.UpdateAvatar)
	h.Get("/:username", c.PublicProfile)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *userController) PublicProfile(ctx *fiber.Ctx) error {
	handle := ctx.Params("username")
	if handle == "" {
		return serverutils.BadRequest("Missing username")
	}

	res, err := c.service.PublicProfile(ctx.Context(), handle)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show public profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *userController) UpdateAvatar(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	fh, err := ctx.FormFile("imageFile")
	if err != nil {
		return serverutils.BadRequest("Missing image file")
	}
	data, err := readFormFile(fh)
	if err != nil {
		return serverutils.BadRequest("Could not read uploaded file")
	}

	res, err := c.service.UpdateAvatar(ctx.Context(), userId, data)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update avatar", res))
}
