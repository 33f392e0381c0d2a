package contact

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
	ContactService interface {
		GetInquiries(ctx context.Context) ([]entities.ContactInquiry, error)
		GetInquiryByID(ctx context.Context, id string) (*entities.ContactInquiry, error)
		SubmitInquiry(ctx context.Context, req domain.CreateContactInquiryRequest) (*entities.ContactInquiry, error)
		UpdateInquiry(ctx context.Context, id string, req domain.UpdateContactInquiryRequest) (*entities.ContactInquiry, error)
		UpdateInquiryStatus(ctx context.Context, id string, status entities.InquiryStatus) (*entities.ContactInquiry, error)
		DeleteInquiry(ctx context.Context, id string) error
	}

	contactService struct {
		contactRepository ContactRepository
		notifier          mailing.Notifier
	}
)

func NewContactService(contactRepository ContactRepository, notifier mailing.Notifier) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		notifier:          notifier,
	}
}

func (s *contactService) GetInquiries(ctx context.Context) ([]entities.ContactInquiry, error) {
	return s.contactRepository.GetInquiries(ctx)
}

func (s *contactService) GetInquiryByID(ctx context.Context, id string) (*entities.ContactInquiry, error) {
	inquiryID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInquiryNotFound
	}
	inquiry, err := s.contactRepository.GetInquiryByID(ctx, inquiryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInquiryNotFound
	}
	return inquiry, err
}

func (s *contactService) SubmitInquiry(ctx context.Context, req domain.CreateContactInquiryRequest) (*entities.ContactInquiry, error) {
	inquiry := &entities.ContactInquiry{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Type:    req.Type,
		Message: req.Message,
	}
	if err := s.contactRepository.CreateInquiry(ctx, inquiry); err != nil {
		return nil, err
	}

	s.notifier.NotifyContactInquiry(inquiry)
	return inquiry, nil
}

func (s *contactService) UpdateInquiry(ctx context.Context, id string, req domain.UpdateContactInquiryRequest) (*entities.ContactInquiry, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Message != nil {
		fields["message"] = *req.Message
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	return s.update(ctx, id, fields)
}

func (s *contactService) UpdateInquiryStatus(ctx context.Context, id string, status entities.InquiryStatus) (*entities.ContactInquiry, error) {
	inquiry, err := s.GetInquiryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry.Status == status {
		return inquiry, nil
	}
	return s.update(ctx, id, map[string]any{"status": status})
}

func (s *contactService) update(ctx context.Context, id string, fields map[string]any) (*entities.ContactInquiry, error) {
	inquiryID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInquiryNotFound
	}
	if len(fields) > 0 {
		err = s.contactRepository.UpdateInquiry(ctx, inquiryID, fields)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInquiryNotFound
		}
		if err != nil {
			return nil, err
		}
	}
	return s.GetInquiryByID(ctx, id)
}

func (s *contactService) DeleteInquiry(ctx context.Context, id string) error {
	inquiryID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInquiryNotFound
	}
	deleted, err := s.contactRepository.DeleteInquiry(ctx, inquiryID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrInquiryNotFound
	}
	return nil
}
