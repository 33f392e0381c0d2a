package coldstorage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
)

type (
	ColdStorageRepository interface {
		GetColdStorages(ctx context.Context) ([]entities.ColdStorage, error)
		GetColdStorageByID(ctx context.Context, id uuid.UUID) (*entities.ColdStorage, error)
		CreateColdStorage(ctx context.Context, storage *entities.ColdStorage) error
		// UpdateColdStorage refuses a capacity below the current stock.
		UpdateColdStorage(ctx context.Context, id uuid.UUID, fields map[string]any) error
		// DeleteColdStorage refuses to delete a storage that lots refer to.
		DeleteColdStorage(ctx context.Context, id uuid.UUID) (bool, error)
	}

	coldStorageRepository struct {
		db *gorm.DB
	}
)

func NewColdStorageRepository(db *gorm.DB) ColdStorageRepository {
	return &coldStorageRepository{db: db}
}

func (r *coldStorageRepository) GetColdStorages(ctx context.Context) ([]entities.ColdStorage, error) {
	storages := []entities.ColdStorage{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&storages).Error; err != nil {
		return nil, err
	}
	return storages, nil
}

func (r *coldStorageRepository) GetColdStorageByID(ctx context.Context, id uuid.UUID) (*entities.ColdStorage, error) {
	var storage entities.ColdStorage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&storage).Error; err != nil {
		return nil, err
	}
	return &storage, nil
}

func (r *coldStorageRepository) CreateColdStorage(ctx context.Context, storage *entities.ColdStorage) error {
	return r.db.WithContext(ctx).Create(storage).Error
}

func (r *coldStorageRepository) UpdateColdStorage(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&entities.ColdStorage{}).Where("id = ?", id)
		if capacity, ok := fields["capacity"]; ok {
			query = query.Where("current_stock <= ?", capacity)
		}
		res := query.Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var found int64
		if err := tx.Model(&entities.ColdStorage{}).Where("id = ?", id).Count(&found).Error; err != nil {
			return err
		}
		if found == 0 {
			return gorm.ErrRecordNotFound
		}
		return domain.ErrCapacityBelowStock
	})
}

func (r *coldStorageRepository) DeleteColdStorage(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lots int64
		if err := tx.Model(&entities.InventoryLot{}).Where("storage_id = ?", id).Count(&lots).Error; err != nil {
			return err
		}
		if lots > 0 {
			return domain.ErrColdStorageHasInventory
		}
		res := tx.Where("id = ?", id).Delete(&entities.ColdStorage{})
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}
