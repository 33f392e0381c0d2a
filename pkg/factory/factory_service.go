package factory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
)

type (
	FactoryService interface {
		GetFactories(ctx context.Context) ([]entities.Factory, error)
		GetFactoryByID(ctx context.Context, id string) (*entities.Factory, error)
		CreateFactory(ctx context.Context, req domain.CreateFactoryRequest) (*entities.Factory, error)
		UpdateFactory(ctx context.Context, id string, req domain.UpdateFactoryRequest) (*entities.Factory, error)
		DeleteFactory(ctx context.Context, id string) error
	}

	factoryService struct {
		factoryRepository FactoryRepository
	}
)

func NewFactoryService(factoryRepository FactoryRepository) FactoryService {
	return &factoryService{factoryRepository: factoryRepository}
}

func (s *factoryService) GetFactories(ctx context.Context) ([]entities.Factory, error) {
	return s.factoryRepository.GetFactories(ctx)
}

func (s *factoryService) GetFactoryByID(ctx context.Context, id string) (*entities.Factory, error) {
	factoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrFactoryNotFound
	}
	factory, err := s.factoryRepository.GetFactoryByID(ctx, factoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFactoryNotFound
	}
	return factory, err
}

func (s *factoryService) CreateFactory(ctx context.Context, req domain.CreateFactoryRequest) (*entities.Factory, error) {
	factory := &entities.Factory{
		Name:               req.Name,
		ContactPerson:      req.ContactPerson,
		Phone:              req.Phone,
		Email:              req.Email,
		Location:           req.Location,
		MonthlyRequirement: req.MonthlyRequirement,
	}
	if err := s.factoryRepository.CreateFactory(ctx, factory); err != nil {
		return nil, err
	}
	return factory, nil
}

func (s *factoryService) UpdateFactory(ctx context.Context, id string, req domain.UpdateFactoryRequest) (*entities.Factory, error) {
	factoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrFactoryNotFound
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		fields["contact_person"] = *req.ContactPerson
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.MonthlyRequirement != nil {
		fields["monthly_requirement"] = *req.MonthlyRequirement
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) > 0 {
		err = s.factoryRepository.UpdateFactory(ctx, factoryID, fields)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFactoryNotFound
		}
		if err != nil {
			return nil, err
		}
	}
	return s.GetFactoryByID(ctx, id)
}

func (s *factoryService) DeleteFactory(ctx context.Context, id string) error {
	factoryID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrFactoryNotFound
	}
	deleted, err := s.factoryRepository.DeleteFactory(ctx, factoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrFactoryNotFound
	}
	return nil
}
