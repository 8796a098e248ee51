package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"schoolpay_backend/internals/features/payments/service"
	helper "schoolpay_backend/internals/helpers"
)

type TransactionController struct {
	Service *service.TransactionService
}

func NewTransactionController(svc *service.TransactionService) *TransactionController {
	return &TransactionController{Service: svc}
}

// GET /transactions?page=&limit=&sortBy=&sortOrder=
func (h *TransactionController) ListTransactions(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "payment_time", "desc")

	res, err := h.Service.List(p)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to fetch transactions: "+err.Error())
	}
	return c.JSON(res)
}

// GET /transactions/school/:schoolId
func (h *TransactionController) ListTransactionsBySchool(c *fiber.Ctx) error {
	schoolID := c.Params("schoolId")
	if schoolID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "schoolId is required")
	}
	p := helper.ParsePagination(c, "payment_time", "desc")

	res, err := h.Service.ListBySchool(schoolID, p)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to fetch school transactions: "+err.Error())
	}
	return c.JSON(res)
}

// GET /transactions/status/:customOrderId
func (h *TransactionController) GetTransactionStatus(c *fiber.Ctx) error {
	customOrderID := c.Params("customOrderId")

	row, err := h.Service.StatusByCustomOrderID(customOrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Transaction not found")
		}
		return fiber.NewError(fiber.StatusBadRequest, "Failed to get transaction status: "+err.Error())
	}
	return c.JSON(row)
}

// POST /transactions/dummy-data
func (h *TransactionController) CreateDummyData(c *fiber.Ctx) error {
	if err := h.Service.CreateDummyData(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to create dummy data: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Dummy data created successfully"})
}
