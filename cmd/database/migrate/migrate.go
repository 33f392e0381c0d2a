package migration

import (
	"log/slog"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"parth-agrotech/entities"
)

// Migrate creates or updates every table. Lots come last so their foreign
// keys can reference farmers and cold storages.
func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"farmer", &entities.Farmer{}},
		{"factory", &entities.Factory{}},
		{"cold storage", &entities.ColdStorage{}},
		{"contact inquiry", &entities.ContactInquiry{}},
		{"inventory lot", &entities.InventoryLot{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "error migrating %s table", m.name)
		}
	}

	slog.Info("database migration complete")
	return nil
}
