package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FactoryStatus string

const (
	FactoryStatusActive   FactoryStatus = "active"
	FactoryStatusInactive FactoryStatus = "inactive"
)

type Factory struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string        `gorm:"not null" json:"name"`
	ContactPerson      string        `gorm:"not null" json:"contactPerson"`
	Phone              string        `gorm:"not null" json:"phone"`
	Email              string        `gorm:"not null" json:"email"`
	Location           string        `gorm:"not null" json:"location"`
	MonthlyRequirement int           `gorm:"not null" json:"monthlyRequirement"` // tons per month
	Status             FactoryStatus `gorm:"type:varchar(16);not null;index" json:"status"`

	Timestamp
}

func (f *Factory) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Status == "" {
		f.Status = FactoryStatusActive
	}
	return nil
}
