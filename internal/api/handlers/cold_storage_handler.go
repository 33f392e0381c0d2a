package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/domain"
	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/pkg/coldstorage"
)

type (
	ColdStorageHandler interface {
		GetColdStorages(c *fiber.Ctx) error
		GetColdStorage(c *fiber.Ctx) error
		CreateColdStorage(c *fiber.Ctx) error
		UpdateColdStorage(c *fiber.Ctx) error
		DeleteColdStorage(c *fiber.Ctx) error
	}

	coldStorageHandler struct {
		coldStorageService coldstorage.ColdStorageService
		validator          *validator.Validate
	}
)

func NewColdStorageHandler(coldStorageService coldstorage.ColdStorageService, validator *validator.Validate) ColdStorageHandler {
	return &coldStorageHandler{
		coldStorageService: coldStorageService,
		validator:          validator,
	}
}

func (h *coldStorageHandler) GetColdStorages(c *fiber.Ctx) error {
	storages, err := h.coldStorageService.GetColdStorages(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, storages, fiber.StatusOK)
}

func (h *coldStorageHandler) GetColdStorage(c *fiber.Ctx) error {
	res, err := h.coldStorageService.GetColdStorageByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *coldStorageHandler) CreateColdStorage(c *fiber.Ctx) error {
	req := new(domain.CreateColdStorageRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.coldStorageService.CreateColdStorage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *coldStorageHandler) UpdateColdStorage(c *fiber.Ctx) error {
	req := new(domain.UpdateColdStorageRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.coldStorageService.UpdateColdStorage(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *coldStorageHandler) DeleteColdStorage(c *fiber.Ctx) error {
	if err := h.coldStorageService.DeleteColdStorage(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.NoContentResponse(c)
}
