package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"` // bcrypt hash
	Role     string    `gorm:"type:varchar(16);not null" json:"role"`

	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleAdmin
	}
	return nil
}
