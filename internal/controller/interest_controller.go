package controller

import (
	"buildhive-be/internal/dto"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterestController interface {
	RegisterRoutes(r fiber.Router)
	Express(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	ListForProject(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	MyInterests(ctx *fiber.Ctx) error
}

type interestController struct {
	service service.IInterestService
}

func NewInterestController(service service.IInterestService) IInterestController {
	return &interestController{service: service}
}

func (c *interestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interests")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/me", c.MyInterests)
	h.Get("/status/:projectId", c.Status)
	h.Get("/project/:projectId", c.ListForProject)
	h.Post("/:projectId", c.Express)
	h.Patch("/:interestId/status", c.UpdateStatus)
}

func (c *interestController) Express(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := parseIdParam(ctx, "projectId")
	if err != nil {
		return err
	}

	var req dto.ExpressInterestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Express(ctx.Context(), userId, projectId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Interest expressed", res))
}

func (c *interestController) Status(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := parseIdParam(ctx, "projectId")
	if err != nil {
		return err
	}

	status, err := c.service.StatusFor(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success interest status", fiber.Map{"status": status}))
}

func (c *interestController) ListForProject(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	projectId, err := parseIdParam(ctx, "projectId")
	if err != nil {
		return err
	}

	res, err := c.service.ListForProject(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list interests", res))
}

func (c *interestController) UpdateStatus(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	interestId, err := parseIdParam(ctx, "interestId")
	if err != nil {
		return err
	}

	var req dto.UpdateInterestStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.Context(), userId, interestId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update interest", res))
}

func (c *interestController) MyInterests(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.MyInterests(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list my interests", res))
}
