package contact

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parth-agrotech/entities"
)

type (
	ContactRepository interface {
		GetInquiries(ctx context.Context) ([]entities.ContactInquiry, error)
		GetInquiryByID(ctx context.Context, id uuid.UUID) (*entities.ContactInquiry, error)
		CreateInquiry(ctx context.Context, inquiry *entities.ContactInquiry) error
		UpdateInquiry(ctx context.Context, id uuid.UUID, fields map[string]any) error
		DeleteInquiry(ctx context.Context, id uuid.UUID) (bool, error)
	}

	contactRepository struct {
		db *gorm.DB
	}
)

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetInquiries(ctx context.Context) ([]entities.ContactInquiry, error) {
	inquiries := []entities.ContactInquiry{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *contactRepository) GetInquiryByID(ctx context.Context, id uuid.UUID) (*entities.ContactInquiry, error) {
	var inquiry entities.ContactInquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *contactRepository) CreateInquiry(ctx context.Context, inquiry *entities.ContactInquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *contactRepository) UpdateInquiry(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&entities.ContactInquiry{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactRepository) DeleteInquiry(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ContactInquiry{})
	return res.RowsAffected > 0, res.Error
}
