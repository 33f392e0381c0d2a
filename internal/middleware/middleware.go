package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/pkg/user"
)

const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		// AuthMiddleware lets only admins with a live session through.
		AuthMiddleware() fiber.Handler
		// RateLimiter limits requests per IP per minute.
		RateLimiter() fiber.Handler
	}

	middleware struct {
		userService  user.UserService
		allowOrigins string
		rateLimitMax int
	}
)

// NewMiddleware builds the shared middleware. A rateLimitMax of zero
// disables rate limiting.
func NewMiddleware(userService user.UserService, allowOrigins string, rateLimitMax int) Middleware {
	return &middleware{
		userService:  userService,
		allowOrigins: allowOrigins,
		rateLimitMax: rateLimitMax,
	}
}

// SessionToken reads the session cookie, falling back to a bearer token.
func SessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(domain.SessionCookieName); token != "" {
		return token
	}
	if token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (m *middleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := m.userService.Authenticate(c.Context(), SessionToken(c))
		if err != nil {
			return presenters.ErrorResponse(c, err)
		}
		if session.Role != entities.RoleAdmin {
			return presenters.ErrorResponse(c, domain.ErrForbidden)
		}

		c.Locals(LocalUserID, session.UserID)
		c.Locals(LocalUsername, session.Username)
		c.Locals(LocalRole, session.Role)
		return c.Next()
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		// fiber refuses credentials with a wildcard origin
		AllowCredentials: m.allowOrigins != "*",
	})
}

func (m *middleware) RateLimiter() fiber.Handler {
	if m.rateLimitMax <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        m.rateLimitMax,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(presenters.Error{
				Error: "too many requests, try again later",
			})
		},
	})
}
