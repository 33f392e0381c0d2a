package domain

import "parth-agrotech/entities"

var (
	ErrColdStorageNotFound     = NewError(ErrNotFound, "cold storage not found")
	ErrColdStorageHasInventory = NewError(ErrConflict, "cold storage has inventory lots and cannot be deleted")
	ErrCapacityBelowStock      = NewError(ErrConflict, "capacity cannot be lower than the current stock")
)

type (
	CreateColdStorageRequest struct {
		Name        string `json:"name" validate:"required"`
		Location    string `json:"location" validate:"required"`
		Capacity    int    `json:"capacity" validate:"required,gt=0"`
		Temperature string `json:"temperature" validate:"omitempty"`
		Humidity    string `json:"humidity" validate:"omitempty"`
	}

	// UpdateColdStorageRequest has no way to set currentStock: the field is
	// declared only so that a client trying to set it gets a validation issue.
	UpdateColdStorageRequest struct {
		Name         *string                     `json:"name" validate:"omitempty,min=1"`
		Location     *string                     `json:"location" validate:"omitempty,min=1"`
		Capacity     *int                        `json:"capacity" validate:"omitempty,gt=0"`
		Temperature  *string                     `json:"temperature" validate:"omitempty,min=1"`
		Humidity     *string                     `json:"humidity" validate:"omitempty,min=1"`
		Status       *entities.ColdStorageStatus `json:"status" validate:"omitempty,oneof=online offline"`
		CurrentStock *int                        `json:"currentStock" validate:"isdefault"`
	}
)
