package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolpay_backend/internals/features/users/dto"
	"schoolpay_backend/internals/features/users/service"
	helper "schoolpay_backend/internals/helpers"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// POST /auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ac.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	log.Printf("[INFO] registration request for email=%s", req.Email)

	user, err := ac.Service.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidRole):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "registration failed: "+err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromUserModel(user))
}

// POST /auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ac.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ac.Service.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUserInactive):
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "login failed: "+err.Error())
		}
	}

	return c.JSON(res)
}

// GET /auth/profile
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}

	user, err := ac.Service.Users.FindByID(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return c.JSON(dto.FromUserModel(user))
}
