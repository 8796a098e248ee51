package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/service"
	helper "schoolpay_backend/internals/helpers"
)

type WebhookController struct {
	Service   *service.WebhookService
	Validator *validator.Validate
}

func NewWebhookController(svc *service.WebhookService) *WebhookController {
	return &WebhookController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// POST /webhook
// Unauthenticated: the gateway does not sign its deliveries.
func (h *WebhookController) ProcessWebhook(c *fiber.Ctx) error {
	var req dto.WebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := h.Service.ProcessWebhook(req)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Webhook processing failed: Order not found")
		}
		return fiber.NewError(fiber.StatusBadRequest, "Webhook processing failed: "+err.Error())
	}

	return c.JSON(res)
}
