package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rockparade/backend/internal/models"
	"github.com/rockparade/backend/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.Params("login"))
	if err != nil {
		return err
	}

	return c.JSON(models.NewResponse(models.ToUserResponse(user)))
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	users, total, err := h.userService.ListUsers(limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(models.NewCollectionResponse(models.ToUserResponses(users), total, limit, offset))
}
