// Package testutil sets up throwaway databases for package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	migration "parth-agrotech/cmd/database/migrate"
	"parth-agrotech/entities"
)

// NewTestDB returns a migrated in-memory sqlite database that lives as long
// as the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func CreateFarmer(t *testing.T, db *gorm.DB, name string) *entities.Farmer {
	t.Helper()
	farmer := &entities.Farmer{
		Name:          name,
		Phone:         "9876543210",
		Village:       "Kheda",
		District:      "Anand",
		FarmSize:      4.5,
		PotatoVariety: "Kufri Jyoti",
	}
	require.NoError(t, db.Create(farmer).Error)
	return farmer
}

func CreateColdStorage(t *testing.T, db *gorm.DB, name string, capacity int) *entities.ColdStorage {
	t.Helper()
	storage := &entities.ColdStorage{
		Name:     name,
		Location: "Deesa",
		Capacity: capacity,
	}
	require.NoError(t, db.Create(storage).Error)
	return storage
}
