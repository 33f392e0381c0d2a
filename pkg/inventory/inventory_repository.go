package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
)

var errStockOutOfSync = errors.New("cold storage stock is lower than its stored lots")

type (
	// LotChanges is a validated partial update of a lot. Nil fields are
	// left alone.
	LotChanges struct {
		Quantity  *int
		Variety   *string
		Grade     *entities.LotGrade
		EntryDate *string
		Status    *entities.LotStatus
	}

	InventoryRepository interface {
		GetLots(ctx context.Context, filter LotQuery) ([]entities.InventoryLot, error)
		GetLotByID(ctx context.Context, id uuid.UUID) (*entities.InventoryLot, error)
		// DepositLot books lot into its storage, refusing deposits that
		// would exceed the storage capacity.
		DepositLot(ctx context.Context, lot *entities.InventoryLot) error
		UpdateLot(ctx context.Context, id uuid.UUID, changes LotChanges) (*entities.InventoryLot, error)
		// DeleteLot releases the quantity of a stored lot from its storage.
		DeleteLot(ctx context.Context, id uuid.UUID) (bool, error)
		GetLotsWithRelations(ctx context.Context) ([]entities.InventoryLot, error)
	}

	LotQuery struct {
		StorageID *uuid.UUID
		FarmerID  *uuid.UUID
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetLots(ctx context.Context, filter LotQuery) ([]entities.InventoryLot, error) {
	lots := []entities.InventoryLot{}
	query := r.db.WithContext(ctx)
	if filter.StorageID != nil {
		query = query.Where("storage_id = ?", *filter.StorageID)
	}
	if filter.FarmerID != nil {
		query = query.Where("farmer_id = ?", *filter.FarmerID)
	}
	if err := query.Order("created_at asc").Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

func (r *inventoryRepository) GetLotsWithRelations(ctx context.Context) ([]entities.InventoryLot, error) {
	lots := []entities.InventoryLot{}
	err := r.db.WithContext(ctx).
		Preload("Farmer").
		Preload("Storage").
		Order("entry_date asc").
		Find(&lots).Error
	if err != nil {
		return nil, err
	}
	return lots, nil
}

func (r *inventoryRepository) GetLotByID(ctx context.Context, id uuid.UUID) (*entities.InventoryLot, error) {
	return getLot(r.db.WithContext(ctx), id)
}

func getLot(tx *gorm.DB, id uuid.UUID) (*entities.InventoryLot, error) {
	var lot entities.InventoryLot
	if err := tx.Where("id = ?", id).First(&lot).Error; err != nil {
		return nil, err
	}
	return &lot, nil
}

func (r *inventoryRepository) DepositLot(ctx context.Context, lot *entities.InventoryLot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var farmers int64
		if err := tx.Model(&entities.Farmer{}).Where("id = ?", lot.FarmerID).Count(&farmers).Error; err != nil {
			return err
		}
		if farmers == 0 {
			return domain.ErrFarmerNotFound
		}

		if err := reserve(tx, lot.StorageID, lot.Quantity); err != nil {
			return err
		}

		lot.Status = entities.LotStatusStored
		return tx.Create(lot).Error
	})
}

func (r *inventoryRepository) UpdateLot(ctx context.Context, id uuid.UUID, changes LotChanges) (*entities.InventoryLot, error) {
	var updated *entities.InventoryLot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lot, err := getLot(tx, id)
		if err != nil {
			return err
		}

		dispatch := false
		if changes.Status != nil && *changes.Status != lot.Status {
			if *changes.Status == entities.LotStatusStored {
				return domain.ErrInvalidLotTransition
			}
			dispatch = true
		}

		if changes.Quantity != nil && *changes.Quantity != lot.Quantity {
			if lot.Status == entities.LotStatusDispatched {
				return domain.ErrDispatchedLotFrozen
			}
			if err := changeQuantity(tx, lot, *changes.Quantity); err != nil {
				return err
			}
		}

		if dispatch {
			if err := dispatchLot(tx, lot); err != nil {
				return err
			}
		}

		fields := map[string]any{}
		if changes.Variety != nil {
			fields["variety"] = *changes.Variety
		}
		if changes.Grade != nil {
			fields["grade"] = *changes.Grade
		}
		if changes.EntryDate != nil {
			fields["entry_date"] = *changes.EntryDate
		}
		if len(fields) > 0 {
			if err := tx.Model(&entities.InventoryLot{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}

		updated, err = getLot(tx, id)
		return err
	})
	return updated, err
}

func (r *inventoryRepository) DeleteLot(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lot, err := getLot(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		res := tx.Where("id = ? AND status = ? AND quantity = ?", id, lot.Status, lot.Quantity).
			Delete(&entities.InventoryLot{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrLotModified
		}
		deleted = true

		if lot.Status == entities.LotStatusStored {
			return release(tx, lot.StorageID, lot.Quantity)
		}
		return nil
	})
	return deleted, err
}

// changeQuantity sets the quantity of a stored lot and moves the difference
// in or out of its storage.
func changeQuantity(tx *gorm.DB, lot *entities.InventoryLot, quantity int) error {
	res := tx.Model(&entities.InventoryLot{}).
		Where("id = ? AND status = ? AND quantity = ?", lot.ID, entities.LotStatusStored, lot.Quantity).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLotModified
	}

	delta := quantity - lot.Quantity
	lot.Quantity = quantity
	if delta > 0 {
		return reserve(tx, lot.StorageID, delta)
	}
	return release(tx, lot.StorageID, -delta)
}

// dispatchLot moves a stored lot to dispatched. The status check in the
// WHERE clause makes it a compare-and-swap, so a lot is only released once.
func dispatchLot(tx *gorm.DB, lot *entities.InventoryLot) error {
	res := tx.Model(&entities.InventoryLot{}).
		Where("id = ? AND status = ?", lot.ID, entities.LotStatusStored).
		Update("status", entities.LotStatusDispatched)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}
	lot.Status = entities.LotStatusDispatched
	return release(tx, lot.StorageID, lot.Quantity)
}

func reserve(tx *gorm.DB, storageID uuid.UUID, quantity int) error {
	res := tx.Model(&entities.ColdStorage{}).
		Where("id = ? AND current_stock + ? <= capacity", storageID, quantity).
		Update("current_stock", gorm.Expr("current_stock + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var storages int64
	if err := tx.Model(&entities.ColdStorage{}).Where("id = ?", storageID).Count(&storages).Error; err != nil {
		return err
	}
	if storages == 0 {
		return domain.ErrColdStorageNotFound
	}
	return domain.ErrCapacityExceeded
}

func release(tx *gorm.DB, storageID uuid.UUID, quantity int) error {
	res := tx.Model(&entities.ColdStorage{}).
		Where("id = ? AND current_stock >= ?", storageID, quantity).
		Update("current_stock", gorm.Expr("current_stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(errStockOutOfSync, "storage %s", storageID)
	}
	return nil
}
