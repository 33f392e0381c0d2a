package domain

import "parth-agrotech/entities"

var (
	ErrInquiryNotFound = NewError(ErrNotFound, "contact inquiry not found")
)

type (
	CreateContactInquiryRequest struct {
		Name    string               `json:"name" validate:"required"`
		Phone   string               `json:"phone" validate:"required"`
		Email   string               `json:"email" validate:"omitempty,email"`
		Type    entities.InquiryType `json:"type" validate:"required,oneof=farmer factory investor other"`
		Message string               `json:"message" validate:"required"`
	}

	UpdateContactInquiryRequest struct {
		Name    *string                 `json:"name" validate:"omitempty,min=1"`
		Phone   *string                 `json:"phone" validate:"omitempty,min=1"`
		Email   *string                 `json:"email" validate:"omitempty,email"`
		Type    *entities.InquiryType   `json:"type" validate:"omitempty,oneof=farmer factory investor other"`
		Message *string                 `json:"message" validate:"omitempty,min=1"`
		Status  *entities.InquiryStatus `json:"status" validate:"omitempty,oneof=new contacted closed"`
	}

	UpdateContactInquiryStatusRequest struct {
		Status entities.InquiryStatus `json:"status" validate:"required,oneof=new contacted closed"`
	}
)
