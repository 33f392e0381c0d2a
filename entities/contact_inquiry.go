package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryType string

const (
	InquiryTypeFarmer   InquiryType = "farmer"
	InquiryTypeFactory  InquiryType = "factory"
	InquiryTypeInvestor InquiryType = "investor"
	InquiryTypeOther    InquiryType = "other"
)

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

type ContactInquiry struct {
	ID      uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string        `gorm:"not null" json:"name"`
	Phone   string        `gorm:"not null" json:"phone"`
	Email   string        `json:"email,omitempty"`
	Type    InquiryType   `gorm:"type:varchar(16);not null" json:"type"`
	Message string        `gorm:"type:text;not null" json:"message"`
	Status  InquiryStatus `gorm:"type:varchar(16);not null;index" json:"status"`

	Timestamp
}

func (c *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = InquiryStatusNew
	}
	return nil
}
