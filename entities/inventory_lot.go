package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LotStatus string

const (
	LotStatusStored     LotStatus = "stored"
	LotStatusDispatched LotStatus = "dispatched"
)

type LotGrade string

const (
	LotGradeA LotGrade = "A"
	LotGradeB LotGrade = "B"
	LotGradeC LotGrade = "C"
)

// InventoryLot is one deposit of a farmer's crop into a cold storage.
type InventoryLot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FarmerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"farmerId"`
	StorageID uuid.UUID `gorm:"type:uuid;not null;index" json:"storageId"`
	Quantity  int       `gorm:"not null" json:"quantity"` // tons
	Variety   string    `gorm:"not null" json:"variety"`
	Grade     LotGrade  `gorm:"type:varchar(1);not null" json:"grade"`
	EntryDate string    `gorm:"type:varchar(10);not null" json:"entryDate"` // YYYY-MM-DD
	Status    LotStatus `gorm:"type:varchar(16);not null;index" json:"status"`

	Farmer  *Farmer      `gorm:"foreignKey:FarmerID;constraint:OnDelete:RESTRICT" json:"-"`
	Storage *ColdStorage `gorm:"foreignKey:StorageID;constraint:OnDelete:RESTRICT" json:"-"`
	Timestamp
}

func (l *InventoryLot) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = LotStatusStored
	}
	return nil
}
