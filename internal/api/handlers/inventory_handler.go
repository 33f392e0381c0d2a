package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/domain"
	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/pkg/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type (
	InventoryHandler interface {
		GetLots(c *fiber.Ctx) error
		GetLot(c *fiber.Ctx) error
		DepositLot(c *fiber.Ctx) error
		UpdateLot(c *fiber.Ctx) error
		DeleteLot(c *fiber.Ctx) error
		ExportInventory(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) GetLots(c *fiber.Ctx) error {
	lots, err := h.inventoryService.GetLots(c.Context(), domain.LotFilter{
		StorageID: c.Query("storageId"),
		FarmerID:  c.Query("farmerId"),
	})
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, lots, fiber.StatusOK)
}

func (h *inventoryHandler) GetLot(c *fiber.Ctx) error {
	res, err := h.inventoryService.GetLotByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *inventoryHandler) DepositLot(c *fiber.Ctx) error {
	req := new(domain.DepositLotRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.inventoryService.DepositLot(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *inventoryHandler) UpdateLot(c *fiber.Ctx) error {
	req := new(domain.UpdateLotRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.inventoryService.UpdateLot(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *inventoryHandler) DeleteLot(c *fiber.Ctx) error {
	if err := h.inventoryService.DeleteLot(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.NoContentResponse(c)
}

func (h *inventoryHandler) ExportInventory(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.inventoryService.ExportWorkbook(c.Context(), &buf); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
