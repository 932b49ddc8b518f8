package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rockparade/backend/internal/models"
	"github.com/rockparade/backend/internal/service"
	"github.com/rockparade/backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	user, err := h.authService.Register(req)
	if err != nil {
		return err
	}

	c.Set("Location", "/api/user/"+user.Login)

	return c.Status(fiber.StatusCreated).JSON(models.NewResponse(models.ToUserResponse(user)))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return err
	}

	token, err := h.authService.Login(req)
	if err != nil {
		return err
	}

	return c.JSON(models.NewResponse(models.TokenResponse{Token: token}))
}

func (h *AuthHandler) RegenerateToken(c *fiber.Ctx) error {
	token, err := h.authService.RegenerateToken(actorLogin(c))
	if err != nil {
		return err
	}

	return c.JSON(models.NewResponse(models.TokenResponse{Token: token}))
}
