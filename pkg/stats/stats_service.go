package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/pkg/inventory"
)

type (
	StatsService interface {
		GetStats(ctx context.Context) (domain.StatsResponse, error)
	}

	statsService struct {
		statsRepository StatsRepository
	}
)

func NewStatsService(statsRepository StatsRepository) StatsService {
	return &statsService{statsRepository: statsRepository}
}

func (s *statsService) GetStats(ctx context.Context) (domain.StatsResponse, error) {
	var (
		farmers   []entities.Farmer
		factories []entities.Factory
		storages  []entities.ColdStorage
		lots      []entities.InventoryLot
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		farmers, err = s.statsRepository.ScanFarmers(ctx)
		return err
	})
	g.Go(func() (err error) {
		factories, err = s.statsRepository.ScanFactories(ctx)
		return err
	})
	g.Go(func() (err error) {
		storages, err = s.statsRepository.ScanColdStorages(ctx)
		return err
	})
	g.Go(func() (err error) {
		lots, err = s.statsRepository.ScanLots(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.StatsResponse{}, err
	}

	return ComputeStats(farmers, factories, storages, lots), nil
}

// ComputeStats reduces the four tables to the dashboard counters.
// Capacity and stock are summed over every storage whatever its status, and
// inventory counts dispatched lots too.
func ComputeStats(farmers []entities.Farmer, factories []entities.Factory, storages []entities.ColdStorage, lots []entities.InventoryLot) domain.StatsResponse {
	stats := domain.StatsResponse{
		TotalFarmers:      len(farmers),
		TotalFactories:    len(factories),
		TotalColdStorages: len(storages),
	}

	for _, f := range farmers {
		switch f.Status {
		case entities.FarmerStatusPending:
			stats.PendingFarmers++
		case entities.FarmerStatusApproved:
			stats.ApprovedFarmers++
		}
	}
	for _, f := range factories {
		if f.Status == entities.FactoryStatusActive {
			stats.ActiveFactories++
		}
	}
	for _, cs := range storages {
		if cs.Status == entities.ColdStorageStatusOnline {
			stats.OnlineStorages++
		}
		stats.TotalCapacity += cs.Capacity
		stats.TotalStock += cs.CurrentStock
	}
	for _, lot := range lots {
		stats.TotalInventory += lot.Quantity
	}

	stats.UtilizationPercent = inventory.Utilization(stats.TotalStock, stats.TotalCapacity)
	return stats
}
