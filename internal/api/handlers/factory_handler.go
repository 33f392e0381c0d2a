package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/domain"
	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/pkg/factory"
)

type (
	FactoryHandler interface {
		GetFactories(c *fiber.Ctx) error
		GetFactory(c *fiber.Ctx) error
		CreateFactory(c *fiber.Ctx) error
		UpdateFactory(c *fiber.Ctx) error
		DeleteFactory(c *fiber.Ctx) error
	}

	factoryHandler struct {
		factoryService factory.FactoryService
		validator      *validator.Validate
	}
)

func NewFactoryHandler(factoryService factory.FactoryService, validator *validator.Validate) FactoryHandler {
	return &factoryHandler{
		factoryService: factoryService,
		validator:      validator,
	}
}

func (h *factoryHandler) GetFactories(c *fiber.Ctx) error {
	factories, err := h.factoryService.GetFactories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, factories, fiber.StatusOK)
}

func (h *factoryHandler) GetFactory(c *fiber.Ctx) error {
	res, err := h.factoryService.GetFactoryByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *factoryHandler) CreateFactory(c *fiber.Ctx) error {
	req := new(domain.CreateFactoryRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.factoryService.CreateFactory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *factoryHandler) UpdateFactory(c *fiber.Ctx) error {
	req := new(domain.UpdateFactoryRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.factoryService.UpdateFactory(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *factoryHandler) DeleteFactory(c *fiber.Ctx) error {
	if err := h.factoryService.DeleteFactory(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.NoContentResponse(c)
}
