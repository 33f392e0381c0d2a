package domain

import "parth-agrotech/entities"

var (
	ErrFactoryNotFound = NewError(ErrNotFound, "factory not found")
)

type (
	CreateFactoryRequest struct {
		Name               string `json:"name" validate:"required"`
		ContactPerson      string `json:"contactPerson" validate:"required"`
		Phone              string `json:"phone" validate:"required"`
		Email              string `json:"email" validate:"required,email"`
		Location           string `json:"location" validate:"required"`
		MonthlyRequirement int    `json:"monthlyRequirement" validate:"required,gt=0"`
	}

	UpdateFactoryRequest struct {
		Name               *string                 `json:"name" validate:"omitempty,min=1"`
		ContactPerson      *string                 `json:"contactPerson" validate:"omitempty,min=1"`
		Phone              *string                 `json:"phone" validate:"omitempty,min=1"`
		Email              *string                 `json:"email" validate:"omitempty,email"`
		Location           *string                 `json:"location" validate:"omitempty,min=1"`
		MonthlyRequirement *int                    `json:"monthlyRequirement" validate:"omitempty,gt=0"`
		Status             *entities.FactoryStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	}
)
