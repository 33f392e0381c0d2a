package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/domain"
	"parth-agrotech/internal/utils"
)

// parseRequest decodes the JSON body into req and validates it.
func parseRequest(c *fiber.Ctx, v *validator.Validate, req any) error {
	if err := c.BodyParser(req); err != nil {
		return domain.ErrInvalidBody
	}
	return utils.ValidateStruct(v, req)
}
