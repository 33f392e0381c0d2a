package farmer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/internal/utils/mailing"
)

type (
	FarmerService interface {
		GetFarmers(ctx context.Context) ([]entities.Farmer, error)
		GetFarmerByID(ctx context.Context, id string) (*entities.Farmer, error)
		RegisterFarmer(ctx context.Context, req domain.CreateFarmerRequest) (*entities.Farmer, error)
		UpdateFarmer(ctx context.Context, id string, req domain.UpdateFarmerRequest) (*entities.Farmer, error)
		UpdateFarmerStatus(ctx context.Context, id string, status entities.FarmerStatus) (*entities.Farmer, error)
		DeleteFarmer(ctx context.Context, id string) error
	}

	farmerService struct {
		farmerRepository FarmerRepository
		notifier         mailing.Notifier
	}
)

func NewFarmerService(farmerRepository FarmerRepository, notifier mailing.Notifier) FarmerService {
	return &farmerService{
		farmerRepository: farmerRepository,
		notifier:         notifier,
	}
}

func (s *farmerService) GetFarmers(ctx context.Context) ([]entities.Farmer, error) {
	return s.farmerRepository.GetFarmers(ctx)
}

func (s *farmerService) GetFarmerByID(ctx context.Context, id string) (*entities.Farmer, error) {
	farmerID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrFarmerNotFound
	}
	farmer, err := s.farmerRepository.GetFarmerByID(ctx, farmerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFarmerNotFound
	}
	return farmer, err
}

func (s *farmerService) RegisterFarmer(ctx context.Context, req domain.CreateFarmerRequest) (*entities.Farmer, error) {
	farmer := &entities.Farmer{
		Name:          req.Name,
		Phone:         req.Phone,
		Village:       req.Village,
		District:      req.District,
		FarmSize:      req.FarmSize,
		PotatoVariety: req.PotatoVariety,
	}
	if err := s.farmerRepository.CreateFarmer(ctx, farmer); err != nil {
		return nil, err
	}

	s.notifier.NotifyFarmerRegistration(farmer)
	return farmer, nil
}

func (s *farmerService) UpdateFarmer(ctx context.Context, id string, req domain.UpdateFarmerRequest) (*entities.Farmer, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Village != nil {
		fields["village"] = *req.Village
	}
	if req.District != nil {
		fields["district"] = *req.District
	}
	if req.FarmSize != nil {
		fields["farm_size"] = *req.FarmSize
	}
	if req.PotatoVariety != nil {
		fields["potato_variety"] = *req.PotatoVariety
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	return s.update(ctx, id, fields)
}

// UpdateFarmerStatus leaves the record untouched when it already has status.
func (s *farmerService) UpdateFarmerStatus(ctx context.Context, id string, status entities.FarmerStatus) (*entities.Farmer, error) {
	if status == "" {
		return nil, domain.ErrFarmerStatusMissing
	}
	farmer, err := s.GetFarmerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if farmer.Status == status {
		return farmer, nil
	}
	return s.update(ctx, id, map[string]any{"status": status})
}

func (s *farmerService) update(ctx context.Context, id string, fields map[string]any) (*entities.Farmer, error) {
	farmerID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrFarmerNotFound
	}
	if len(fields) > 0 {
		err = s.farmerRepository.UpdateFarmer(ctx, farmerID, fields)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFarmerNotFound
		}
		if err != nil {
			return nil, err
		}
	}
	return s.GetFarmerByID(ctx, id)
}

func (s *farmerService) DeleteFarmer(ctx context.Context, id string) error {
	farmerID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrFarmerNotFound
	}
	deleted, err := s.farmerRepository.DeleteFarmer(ctx, farmerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrFarmerNotFound
	}
	return nil
}
