package stats

import (
	"context"

	"gorm.io/gorm"

	"parth-agrotech/entities"
)

type (
	StatsRepository interface {
		ScanFarmers(ctx context.Context) ([]entities.Farmer, error)
		ScanFactories(ctx context.Context) ([]entities.Factory, error)
		ScanColdStorages(ctx context.Context) ([]entities.ColdStorage, error)
		ScanLots(ctx context.Context) ([]entities.InventoryLot, error)
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) ScanFarmers(ctx context.Context) ([]entities.Farmer, error) {
	var farmers []entities.Farmer
	err := r.db.WithContext(ctx).Select("id", "status").Find(&farmers).Error
	return farmers, err
}

func (r *statsRepository) ScanFactories(ctx context.Context) ([]entities.Factory, error) {
	var factories []entities.Factory
	err := r.db.WithContext(ctx).Select("id", "status").Find(&factories).Error
	return factories, err
}

func (r *statsRepository) ScanColdStorages(ctx context.Context) ([]entities.ColdStorage, error) {
	var storages []entities.ColdStorage
	err := r.db.WithContext(ctx).Select("id", "capacity", "current_stock", "status").Find(&storages).Error
	return storages, err
}

func (r *statsRepository) ScanLots(ctx context.Context) ([]entities.InventoryLot, error) {
	var lots []entities.InventoryLot
	err := r.db.WithContext(ctx).Select("id", "quantity", "status").Find(&lots).Error
	return lots, err
}
