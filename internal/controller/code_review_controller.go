package controller

import (
	"buildhive-be/internal/dto"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/pkg/throttle"
	"buildhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICodeReviewController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	MyReviews(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type codeReviewController struct {
	service   service.ICodeReviewService
	ipLimiter *throttle.IPLimiter
}

func NewCodeReviewController(service service.ICodeReviewService, ipLimiter *throttle.IPLimiter) ICodeReviewController {
	return &codeReviewController{
		service:   service,
		ipLimiter: ipLimiter,
	}
}

func (c *codeReviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/code-reviews")
	h.Post("", c.ipLimiter.Middleware(), serverutils.OptionalJwtMiddleware, c.Create)
	h.Get("/my-reviews", serverutils.JwtMiddleware, c.MyReviews)
	h.Get("/stats", serverutils.JwtMiddleware, c.Stats)
	h.Get("/:id", serverutils.OptionalJwtMiddleware, c.Show)
}

func (c *codeReviewController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), optionalUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Review complete", res))
}

func (c *codeReviewController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), optionalUserId(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show review", res))
}

func (c *codeReviewController) MyReviews(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.MyReviews(ctx.Context(), userId, ctx.QueryInt("page", 1), ctx.QueryInt("limit", 20))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list reviews", res))
}

func (c *codeReviewController) Stats(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Stats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success review stats", res))
}
