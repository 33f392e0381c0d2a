package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/domain"
	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/internal/middleware"
	"parth-agrotech/pkg/user"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		Setup(c *fiber.Ctx) error
	}

	authHandler struct {
		userService  user.UserService
		validator    *validator.Validate
		cookieSecure bool
	}
)

func NewAuthHandler(userService user.UserService, validator *validator.Validate, cookieSecure bool) AuthHandler {
	return &authHandler{
		userService:  userService,
		validator:    validator,
		cookieSecure: cookieSecure,
	}
}

func (h *authHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	c.Cookie(h.sessionCookie(res.SessionToken, res.ExpiresAt))
	return presenters.SuccessResponse(c, fiber.Map{
		"success": true,
		"user":    res.User,
	}, fiber.StatusOK)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	if err := h.userService.Logout(c.Context(), middleware.SessionToken(c)); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	c.Cookie(h.sessionCookie("", time.Unix(0, 0)))
	return presenters.SuccessResponse(c, fiber.Map{"success": true}, fiber.StatusOK)
}

func (h *authHandler) Me(c *fiber.Ctx) error {
	res, err := h.userService.WhoAmI(c.Context(), middleware.SessionToken(c))
	if err != nil {
		if presenters.StatusCode(err) == fiber.StatusUnauthorized {
			return presenters.SuccessResponse(c, fiber.Map{"authenticated": false}, fiber.StatusUnauthorized)
		}
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"authenticated": true,
		"user":          res,
	}, fiber.StatusOK)
}

func (h *authHandler) Setup(c *fiber.Ctx) error {
	req := new(domain.SetupRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.userService.Setup(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"user": res}, fiber.StatusCreated)
}
