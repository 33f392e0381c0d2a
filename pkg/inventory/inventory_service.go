package inventory

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/pkg/coldstorage"
)

type (
	InventoryService interface {
		GetLots(ctx context.Context, filter domain.LotFilter) ([]entities.InventoryLot, error)
		GetLotByID(ctx context.Context, id string) (*entities.InventoryLot, error)
		DepositLot(ctx context.Context, req domain.DepositLotRequest) (*entities.InventoryLot, error)
		UpdateLot(ctx context.Context, id string, req domain.UpdateLotRequest) (*entities.InventoryLot, error)
		DeleteLot(ctx context.Context, id string) error
		ExportWorkbook(ctx context.Context, w io.Writer) error
	}

	inventoryService struct {
		inventoryRepository   InventoryRepository
		coldStorageRepository coldstorage.ColdStorageRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, coldStorageRepository coldstorage.ColdStorageRepository) InventoryService {
	return &inventoryService{
		inventoryRepository:   inventoryRepository,
		coldStorageRepository: coldStorageRepository,
	}
}

// GetLots lists every lot, or the lots of one storage or one farmer. A
// malformed filter id matches nothing.
func (s *inventoryService) GetLots(ctx context.Context, filter domain.LotFilter) ([]entities.InventoryLot, error) {
	if filter.StorageID != "" && filter.FarmerID != "" {
		return nil, domain.ErrConflictingFilters
	}

	var query LotQuery
	for _, f := range []struct {
		raw    string
		target **uuid.UUID
	}{
		{filter.StorageID, &query.StorageID},
		{filter.FarmerID, &query.FarmerID},
	} {
		if f.raw == "" {
			continue
		}
		id, err := uuid.Parse(f.raw)
		if err != nil {
			return []entities.InventoryLot{}, nil
		}
		*f.target = &id
	}

	return s.inventoryRepository.GetLots(ctx, query)
}

func (s *inventoryService) GetLotByID(ctx context.Context, id string) (*entities.InventoryLot, error) {
	lotID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrLotNotFound
	}
	lot, err := s.inventoryRepository.GetLotByID(ctx, lotID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrLotNotFound
	}
	return lot, err
}

func (s *inventoryService) DepositLot(ctx context.Context, req domain.DepositLotRequest) (*entities.InventoryLot, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	farmerID, err := uuid.Parse(req.FarmerID)
	if err != nil {
		return nil, domain.ErrFarmerNotFound
	}
	storageID, err := uuid.Parse(req.StorageID)
	if err != nil {
		return nil, domain.ErrColdStorageNotFound
	}

	lot := &entities.InventoryLot{
		FarmerID:  farmerID,
		StorageID: storageID,
		Quantity:  req.Quantity,
		Variety:   req.Variety,
		Grade:     req.Grade,
		EntryDate: req.EntryDate,
	}
	if err := s.inventoryRepository.DepositLot(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

func (s *inventoryService) UpdateLot(ctx context.Context, id string, req domain.UpdateLotRequest) (*entities.InventoryLot, error) {
	lotID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrLotNotFound
	}
	if req.FarmerID != nil {
		return nil, domain.NewValidationError("farmerId", "isdefault", "cannot be set")
	}
	if req.StorageID != nil {
		return nil, domain.NewValidationError("storageId", "isdefault", "cannot be set")
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	lot, err := s.inventoryRepository.UpdateLot(ctx, lotID, LotChanges{
		Quantity:  req.Quantity,
		Variety:   req.Variety,
		Grade:     req.Grade,
		EntryDate: req.EntryDate,
		Status:    req.Status,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrLotNotFound
	}
	return lot, err
}

func (s *inventoryService) DeleteLot(ctx context.Context, id string) error {
	lotID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrLotNotFound
	}
	deleted, err := s.inventoryRepository.DeleteLot(ctx, lotID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrLotNotFound
	}
	return nil
}
