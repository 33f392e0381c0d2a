package farmer

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
)

type (
	FarmerRepository interface {
		GetFarmers(ctx context.Context) ([]entities.Farmer, error)
		GetFarmerByID(ctx context.Context, id uuid.UUID) (*entities.Farmer, error)
		CreateFarmer(ctx context.Context, farmer *entities.Farmer) error
		UpdateFarmer(ctx context.Context, id uuid.UUID, fields map[string]any) error
		// DeleteFarmer reports false when no farmer has the id. A farmer
		// with inventory lots is not deleted.
		DeleteFarmer(ctx context.Context, id uuid.UUID) (bool, error)
	}

	farmerRepository struct {
		db *gorm.DB
	}
)

func NewFarmerRepository(db *gorm.DB) FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) GetFarmers(ctx context.Context) ([]entities.Farmer, error) {
	farmers := []entities.Farmer{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&farmers).Error; err != nil {
		return nil, err
	}
	return farmers, nil
}

func (r *farmerRepository) GetFarmerByID(ctx context.Context, id uuid.UUID) (*entities.Farmer, error) {
	var farmer entities.Farmer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepository) CreateFarmer(ctx context.Context, farmer *entities.Farmer) error {
	return r.db.WithContext(ctx).Create(farmer).Error
}

func (r *farmerRepository) UpdateFarmer(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&entities.Farmer{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *farmerRepository) DeleteFarmer(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lots int64
		if err := tx.Model(&entities.InventoryLot{}).Where("farmer_id = ?", id).Count(&lots).Error; err != nil {
			return err
		}
		if lots > 0 {
			return domain.ErrFarmerHasInventory
		}
		res := tx.Where("id = ?", id).Delete(&entities.Farmer{})
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}
