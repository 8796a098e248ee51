package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/gateway"
	"schoolpay_backend/internals/features/payments/service"
	helper "schoolpay_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type PaymentController struct {
	Service   *service.PaymentService
	Validator *validator.Validate
}

func NewPaymentController(svc *service.PaymentService) *PaymentController {
	return &PaymentController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// POST /payment/create-payment
func (h *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := h.Service.CreatePayment(c.UserContext(), req)
	if err != nil {
		var gwErr *gateway.GatewayError
		if errors.As(err, &gwErr) {
			return fiber.NewError(fiber.StatusBadRequest, "Payment creation failed: "+gwErr.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, "Payment creation failed: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

// GET /payment/status/:customOrderId
func (h *PaymentController) GetPaymentStatus(c *fiber.Ctx) error {
	customOrderID := c.Params("customOrderId")
	if customOrderID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "customOrderId is required")
	}

	res, err := h.Service.GetPaymentStatus(c.UserContext(), customOrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Order not found")
		}
		var gwErr *gateway.GatewayError
		if errors.As(err, &gwErr) {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to get payment status: "+gwErr.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get payment status: "+err.Error())
	}

	return c.JSON(res)
}

// GET /payment/callback
// Gateway redirect target; logs and acknowledges only.
func (h *PaymentController) PaymentCallback(c *fiber.Ctx) error {
	log.Printf("[INFO] payment callback received: %s", c.Request().URI().QueryString())
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Callback received successfully",
	})
}
