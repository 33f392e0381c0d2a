package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColdStorageStatus string

const (
	ColdStorageStatusOnline  ColdStorageStatus = "online"
	ColdStorageStatusOffline ColdStorageStatus = "offline"
)

const (
	DefaultStorageTemperature = "3.2"
	DefaultStorageHumidity    = "88"
)

// ColdStorage is a storage site. CurrentStock is owned by the inventory
// ledger and always equals the quantity of the lots stored in it.
type ColdStorage struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string            `gorm:"not null" json:"name"`
	Location     string            `gorm:"not null" json:"location"`
	Capacity     int               `gorm:"not null" json:"capacity"`                // tons
	CurrentStock int               `gorm:"not null;default:0" json:"currentStock"` // tons
	Temperature  string            `gorm:"not null" json:"temperature"`            // °C
	Humidity     string            `gorm:"not null" json:"humidity"`               // %
	Status       ColdStorageStatus `gorm:"type:varchar(16);not null;index" json:"status"`

	Timestamp
}

func (s *ColdStorage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CurrentStock = 0
	if s.Temperature == "" {
		s.Temperature = DefaultStorageTemperature
	}
	if s.Humidity == "" {
		s.Humidity = DefaultStorageHumidity
	}
	if s.Status == "" {
		s.Status = ColdStorageStatusOnline
	}
	return nil
}
