package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/domain"
	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/pkg/farmer"
)

type (
	FarmerHandler interface {
		GetFarmers(c *fiber.Ctx) error
		GetFarmer(c *fiber.Ctx) error
		RegisterFarmer(c *fiber.Ctx) error
		UpdateFarmer(c *fiber.Ctx) error
		UpdateFarmerStatus(c *fiber.Ctx) error
		DeleteFarmer(c *fiber.Ctx) error
	}

	farmerHandler struct {
		farmerService farmer.FarmerService
		validator     *validator.Validate
	}
)

func NewFarmerHandler(farmerService farmer.FarmerService, validator *validator.Validate) FarmerHandler {
	return &farmerHandler{
		farmerService: farmerService,
		validator:     validator,
	}
}

func (h *farmerHandler) GetFarmers(c *fiber.Ctx) error {
	farmers, err := h.farmerService.GetFarmers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, farmers, fiber.StatusOK)
}

func (h *farmerHandler) GetFarmer(c *fiber.Ctx) error {
	res, err := h.farmerService.GetFarmerByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *farmerHandler) RegisterFarmer(c *fiber.Ctx) error {
	req := new(domain.CreateFarmerRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.farmerService.RegisterFarmer(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *farmerHandler) UpdateFarmer(c *fiber.Ctx) error {
	req := new(domain.UpdateFarmerRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.farmerService.UpdateFarmer(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *farmerHandler) UpdateFarmerStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateFarmerStatusRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.farmerService.UpdateFarmerStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *farmerHandler) DeleteFarmer(c *fiber.Ctx) error {
	if err := h.farmerService.DeleteFarmer(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.NoContentResponse(c)
}
