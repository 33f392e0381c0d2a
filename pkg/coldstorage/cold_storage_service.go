package coldstorage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
)

type (
	ColdStorageService interface {
		GetColdStorages(ctx context.Context) ([]entities.ColdStorage, error)
		GetColdStorageByID(ctx context.Context, id string) (*entities.ColdStorage, error)
		CreateColdStorage(ctx context.Context, req domain.CreateColdStorageRequest) (*entities.ColdStorage, error)
		UpdateColdStorage(ctx context.Context, id string, req domain.UpdateColdStorageRequest) (*entities.ColdStorage, error)
		DeleteColdStorage(ctx context.Context, id string) error
	}

	coldStorageService struct {
		coldStorageRepository ColdStorageRepository
	}
)

func NewColdStorageService(coldStorageRepository ColdStorageRepository) ColdStorageService {
	return &coldStorageService{coldStorageRepository: coldStorageRepository}
}

func (s *coldStorageService) GetColdStorages(ctx context.Context) ([]entities.ColdStorage, error) {
	return s.coldStorageRepository.GetColdStorages(ctx)
}

func (s *coldStorageService) GetColdStorageByID(ctx context.Context, id string) (*entities.ColdStorage, error) {
	storageID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrColdStorageNotFound
	}
	storage, err := s.coldStorageRepository.GetColdStorageByID(ctx, storageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrColdStorageNotFound
	}
	return storage, err
}

// CreateColdStorage always starts the storage empty; stock only changes
// through the inventory ledger.
func (s *coldStorageService) CreateColdStorage(ctx context.Context, req domain.CreateColdStorageRequest) (*entities.ColdStorage, error) {
	storage := &entities.ColdStorage{
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
	}
	if err := s.coldStorageRepository.CreateColdStorage(ctx, storage); err != nil {
		return nil, err
	}
	return storage, nil
}

func (s *coldStorageService) UpdateColdStorage(ctx context.Context, id string, req domain.UpdateColdStorageRequest) (*entities.ColdStorage, error) {
	storageID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrColdStorageNotFound
	}
	if req.CurrentStock != nil {
		return nil, domain.NewValidationError("currentStock", "isdefault", "cannot be set")
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.Temperature != nil {
		fields["temperature"] = *req.Temperature
	}
	if req.Humidity != nil {
		fields["humidity"] = *req.Humidity
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) > 0 {
		err = s.coldStorageRepository.UpdateColdStorage(ctx, storageID, fields)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrColdStorageNotFound
		}
		if err != nil {
			return nil, err
		}
	}
	return s.GetColdStorageByID(ctx, id)
}

func (s *coldStorageService) DeleteColdStorage(ctx context.Context, id string) error {
	storageID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrColdStorageNotFound
	}
	deleted, err := s.coldStorageRepository.DeleteColdStorage(ctx, storageID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrColdStorageNotFound
	}
	return nil
}
