package controller

import (
	"buildhive-be/internal/dto"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/service"
	"buildhive-be/pkg/payment"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	CreateOrder(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment")
	h.Post("/create-order", serverutils.JwtMiddleware, c.CreateOrder)
	h.Post("/verify", serverutils.JwtMiddleware, c.Verify)
	// The gateway authenticates itself with the signature header, not a
	// bearer token.
	h.Post("/webhook", c.Webhook)
	h.Get("/status", serverutils.JwtMiddleware, c.Status)
}

func (c *paymentController) CreateOrder(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateOrder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Order created", res))
}

func (c *paymentController) Verify(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.VerifyPayment(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Payment verified", res))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	// ctx.Body() is the untouched byte buffer the signature was
	// computed over. No parsing happens before this point.
	rawBody := ctx.Body()
	signature := ctx.Get(payment.WebhookSignatureHeader)

	if err := c.service.HandleWebhook(ctx.Context(), rawBody, signature); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Webhook processed", nil))
}

func (c *paymentController) Status(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Status(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success subscription status", res))
}
