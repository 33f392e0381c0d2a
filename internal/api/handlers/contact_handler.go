package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/domain"
	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/pkg/contact"
)

type (
	ContactHandler interface {
		GetInquiries(c *fiber.Ctx) error
		GetInquiry(c *fiber.Ctx) error
		SubmitInquiry(c *fiber.Ctx) error
		UpdateInquiry(c *fiber.Ctx) error
		UpdateInquiryStatus(c *fiber.Ctx) error
		DeleteInquiry(c *fiber.Ctx) error
	}

	contactHandler struct {
		contactService contact.ContactService
		validator      *validator.Validate
	}
)

func NewContactHandler(contactService contact.ContactService, validator *validator.Validate) ContactHandler {
	return &contactHandler{
		contactService: contactService,
		validator:      validator,
	}
}

func (h *contactHandler) GetInquiries(c *fiber.Ctx) error {
	inquiries, err := h.contactService.GetInquiries(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, inquiries, fiber.StatusOK)
}

func (h *contactHandler) GetInquiry(c *fiber.Ctx) error {
	res, err := h.contactService.GetInquiryByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *contactHandler) SubmitInquiry(c *fiber.Ctx) error {
	req := new(domain.CreateContactInquiryRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.contactService.SubmitInquiry(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *contactHandler) UpdateInquiry(c *fiber.Ctx) error {
	req := new(domain.UpdateContactInquiryRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.contactService.UpdateInquiry(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *contactHandler) UpdateInquiryStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateContactInquiryStatusRequest)
	if err := parseRequest(c, h.validator, req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.contactService.UpdateInquiryStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *contactHandler) DeleteInquiry(c *fiber.Ctx) error {
	if err := h.contactService.DeleteInquiry(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.NoContentResponse(c)
}
