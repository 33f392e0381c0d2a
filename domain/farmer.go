package domain

import "parth-agrotech/entities"

var (
	ErrFarmerNotFound      = NewError(ErrNotFound, "farmer not found")
	ErrFarmerHasInventory  = NewError(ErrConflict, "farmer has inventory lots and cannot be deleted")
	ErrFarmerStatusMissing = NewError(ErrBadRequest, "status is required")
)

type (
	CreateFarmerRequest struct {
		Name          string  `json:"name" validate:"required"`
		Phone         string  `json:"phone" validate:"required"`
		Village       string  `json:"village" validate:"required"`
		District      string  `json:"district" validate:"required"`
		FarmSize      float64 `json:"farmSize" validate:"required,gt=0"`
		PotatoVariety string  `json:"potatoVariety" validate:"required"`
	}

	UpdateFarmerRequest struct {
		Name          *string                `json:"name" validate:"omitempty,min=1"`
		Phone         *string                `json:"phone" validate:"omitempty,min=1"`
		Village       *string                `json:"village" validate:"omitempty,min=1"`
		District      *string                `json:"district" validate:"omitempty,min=1"`
		FarmSize      *float64               `json:"farmSize" validate:"omitempty,gt=0"`
		PotatoVariety *string                `json:"potatoVariety" validate:"omitempty,min=1"`
		Status        *entities.FarmerStatus `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	}

	UpdateFarmerStatusRequest struct {
		Status entities.FarmerStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	}
)
