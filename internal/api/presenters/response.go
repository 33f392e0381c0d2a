package presenters

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"parth-agrotech/domain"
)

type Error struct {
	Error any `json:"error"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// StatusCode maps a domain error to its HTTP status. Errors of no known kind
// are internal.
func StatusCode(err error) int {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorResponse writes err as {"error": ...}. Validation failures carry the
// list of field issues; internal errors are logged and hidden.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(Error{Error: validationErr.Issues})
	}

	code := StatusCode(err)
	if code == fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		return c.Status(code).JSON(Error{Error: domain.MessageInternalServerError})
	}
	return c.Status(code).JSON(Error{Error: err.Error()})
}

// ErrorHandler is the fiber error handler. It turns routing errors into JSON
// and sends everything else through ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return c.Status(fiberErr.Code).JSON(Error{Error: domain.MessageRouteNotFound})
		case fiber.StatusMethodNotAllowed:
			return c.Status(fiberErr.Code).JSON(Error{Error: domain.MessageMethodNotAllowed})
		case fiber.StatusInternalServerError:
			return ErrorResponse(c, err)
		default:
			return c.Status(fiberErr.Code).JSON(Error{Error: fiberErr.Message})
		}
	}
	return ErrorResponse(c, err)
}
