package stats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/internal/testutil"
	"parth-agrotech/pkg/coldstorage"
	"parth-agrotech/pkg/inventory"
	"parth-agrotech/pkg/stats"
)

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, domain.StatsResponse{}, stats.ComputeStats(nil, nil, nil, nil))
}

func TestComputeStats(t *testing.T) {
	farmers := []entities.Farmer{
		{Status: entities.FarmerStatusPending},
		{Status: entities.FarmerStatusPending},
		{Status: entities.FarmerStatusApproved},
		{Status: entities.FarmerStatusRejected},
	}
	factories := []entities.Factory{
		{Status: entities.FactoryStatusActive},
		{Status: entities.FactoryStatusInactive},
	}
	storages := []entities.ColdStorage{
		{Capacity: 1000, CurrentStock: 333, Status: entities.ColdStorageStatusOnline},
		{Capacity: 2000, CurrentStock: 0, Status: entities.ColdStorageStatusOffline},
	}
	lots := []entities.InventoryLot{
		{Quantity: 333, Status: entities.LotStatusStored},
		{Quantity: 100, Status: entities.LotStatusDispatched},
	}

	got := stats.ComputeStats(farmers, factories, storages, lots)
	assert.Equal(t, domain.StatsResponse{
		TotalFarmers:       4,
		PendingFarmers:     2,
		ApprovedFarmers:    1,
		TotalFactories:     2,
		ActiveFactories:    1,
		TotalColdStorages:  2,
		OnlineStorages:     1,
		TotalCapacity:      3000,
		TotalStock:         333,
		TotalInventory:     433,
		UtilizationPercent: 11,
	}, got)
}

func TestGetStatsAfterDeposit(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	storageRepo := coldstorage.NewColdStorageRepository(db)
	storages := coldstorage.NewColdStorageService(storageRepo)
	lots := inventory.NewInventoryService(inventory.NewInventoryRepository(db), storageRepo)

	farmer := testutil.CreateFarmer(t, db, "Ramesh")
	storage, err := storages.CreateColdStorage(ctx, domain.CreateColdStorageRequest{
		Name:     "Unit A",
		Location: "Deesa",
		Capacity: 5000,
	})
	require.NoError(t, err)
	_, err = lots.DepositLot(ctx, domain.DepositLotRequest{
		FarmerID:  farmer.ID.String(),
		StorageID: storage.ID.String(),
		Quantity:  200,
		Variety:   "Atlantic",
		Grade:     entities.LotGradeA,
		EntryDate: "2025-01-10",
	})
	require.NoError(t, err)

	got, err := stats.NewStatsService(stats.NewStatsRepository(db)).GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalFarmers)
	assert.Equal(t, 1, got.PendingFarmers)
	assert.Equal(t, 1, got.TotalColdStorages)
	assert.Equal(t, 1, got.OnlineStorages)
	assert.Equal(t, 5000, got.TotalCapacity)
	assert.Equal(t, 200, got.TotalStock)
	assert.Equal(t, 200, got.TotalInventory)
	assert.Equal(t, 4, got.UtilizationPercent)
}
