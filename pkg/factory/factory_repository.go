package factory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/entities"
)

type (
	FactoryRepository interface {
		GetFactories(ctx context.Context) ([]entities.Factory, error)
		GetFactoryByID(ctx context.Context, id uuid.UUID) (*entities.Factory, error)
		CreateFactory(ctx context.Context, factory *entities.Factory) error
		UpdateFactory(ctx context.Context, id uuid.UUID, fields map[string]any) error
		DeleteFactory(ctx context.Context, id uuid.UUID) (bool, error)
	}

	factoryRepository struct {
		db *gorm.DB
	}
)

func NewFactoryRepository(db *gorm.DB) FactoryRepository {
	return &factoryRepository{db: db}
}

func (r *factoryRepository) GetFactories(ctx context.Context) ([]entities.Factory, error) {
	factories := []entities.Factory{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&factories).Error; err != nil {
		return nil, err
	}
	return factories, nil
}

func (r *factoryRepository) GetFactoryByID(ctx context.Context, id uuid.UUID) (*entities.Factory, error) {
	var factory entities.Factory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&factory).Error; err != nil {
		return nil, err
	}
	return &factory, nil
}

func (r *factoryRepository) CreateFactory(ctx context.Context, factory *entities.Factory) error {
	return r.db.WithContext(ctx).Create(factory).Error
}

func (r *factoryRepository) UpdateFactory(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&entities.Factory{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *factoryRepository) DeleteFactory(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Factory{})
	return res.RowsAffected > 0, res.Error
}
