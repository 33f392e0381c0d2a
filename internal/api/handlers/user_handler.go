package handlers

import (
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/internal/middleware"
	"parth-agrotech/pkg/user"
)

type (
	UserHandler interface {
		GetUsers(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
	}
)

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandler{userService: userService}
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, users, fiber.StatusOK)
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	res, err := h.userService.GetUserByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	actorID, _ := c.Locals(middleware.LocalUserID).(string)
	if err := h.userService.DeleteUser(c.Context(), c.Params("id"), actorID); err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.NoContentResponse(c)
}
