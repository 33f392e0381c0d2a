package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FarmerStatus string

const (
	FarmerStatusPending  FarmerStatus = "pending"
	FarmerStatusApproved FarmerStatus = "approved"
	FarmerStatusRejected FarmerStatus = "rejected"
)

type Farmer struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	Phone         string       `gorm:"not null" json:"phone"`
	Village       string       `gorm:"not null" json:"village"`
	District      string       `gorm:"not null" json:"district"`
	FarmSize      float64      `gorm:"not null" json:"farmSize"` // acres
	PotatoVariety string       `gorm:"not null" json:"potatoVariety"`
	Status        FarmerStatus `gorm:"type:varchar(16);not null;index" json:"status"`

	Timestamp
}

func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Status == "" {
		f.Status = FarmerStatusPending
	}
	return nil
}
