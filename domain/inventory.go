package domain

import "parth-agrotech/entities"

var (
	ErrLotNotFound          = NewError(ErrNotFound, "inventory item not found")
	ErrCapacityExceeded     = NewError(ErrConflict, "cold storage capacity exceeded")
	ErrInvalidLotTransition = NewError(ErrConflict, "dispatched lots cannot be returned to storage")
	ErrDispatchedLotFrozen  = NewError(ErrConflict, "quantity of a dispatched lot cannot change")
	ErrConflictingFilters   = NewError(ErrBadRequest, "storageId and farmerId filters are mutually exclusive")
	ErrInvalidQuantity      = NewError(ErrBadRequest, "quantity must be positive")
	ErrLotModified          = NewError(ErrConflict, "inventory item was modified concurrently, retry")
)

type (
	DepositLotRequest struct {
		FarmerID  string            `json:"farmerId" validate:"required,uuid"`
		StorageID string            `json:"storageId" validate:"required,uuid"`
		Quantity  int               `json:"quantity" validate:"required,gt=0"`
		Variety   string            `json:"variety" validate:"required"`
		Grade     entities.LotGrade `json:"grade" validate:"required,oneof=A B C"`
		EntryDate string            `json:"entryDate" validate:"required,datetime=2006-01-02"`
	}

	// UpdateLotRequest moves a lot through its lifecycle. A lot cannot change
	// owner or site; that is a dispatch followed by a new deposit.
	UpdateLotRequest struct {
		Quantity  *int                `json:"quantity" validate:"omitempty,gt=0"`
		Variety   *string             `json:"variety" validate:"omitempty,min=1"`
		Grade     *entities.LotGrade  `json:"grade" validate:"omitempty,oneof=A B C"`
		EntryDate *string             `json:"entryDate" validate:"omitempty,datetime=2006-01-02"`
		Status    *entities.LotStatus `json:"status" validate:"omitempty,oneof=stored dispatched"`
		FarmerID  *string             `json:"farmerId" validate:"isdefault"`
		StorageID *string             `json:"storageId" validate:"isdefault"`
	}

	LotFilter struct {
		StorageID string
		FarmerID  string
	}
)
