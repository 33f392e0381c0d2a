package inventory

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"parth-agrotech/entities"
)

const (
	lotsSheet     = "Lots"
	storagesSheet = "Storages"
)

var (
	lotsHeader     = []any{"Lot ID", "Farmer", "Cold Storage", "Variety", "Grade", "Quantity (tons)", "Entry Date", "Status"}
	storagesHeader = []any{"Storage ID", "Name", "Location", "Capacity (tons)", "Current Stock (tons)", "Utilization %", "Temperature", "Humidity", "Status"}
)

// ExportWorkbook writes an xlsx workbook with one row per lot and one row
// per cold storage.
func (s *inventoryService) ExportWorkbook(ctx context.Context, w io.Writer) error {
	lots, err := s.inventoryRepository.GetLotsWithRelations(ctx)
	if err != nil {
		return err
	}
	storages, err := s.coldStorageRepository.GetColdStorages(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", lotsSheet); err != nil {
		return errors.Wrap(err, "could not name lots sheet")
	}
	if _, err := f.NewSheet(storagesSheet); err != nil {
		return errors.Wrap(err, "could not add storages sheet")
	}

	if err := writeRows(f, lotsSheet, lotsHeader, lotRows(lots)); err != nil {
		return err
	}
	if err := writeRows(f, storagesSheet, storagesHeader, storageRows(storages)); err != nil {
		return err
	}

	return errors.Wrap(f.Write(w), "could not write workbook")
}

func lotRows(lots []entities.InventoryLot) [][]any {
	rows := make([][]any, 0, len(lots))
	for _, lot := range lots {
		farmer, storage := lot.FarmerID.String(), lot.StorageID.String()
		if lot.Farmer != nil {
			farmer = lot.Farmer.Name
		}
		if lot.Storage != nil {
			storage = lot.Storage.Name
		}
		rows = append(rows, []any{
			lot.ID.String(), farmer, storage, lot.Variety, string(lot.Grade), lot.Quantity, lot.EntryDate, string(lot.Status),
		})
	}
	return rows
}

func storageRows(storages []entities.ColdStorage) [][]any {
	rows := make([][]any, 0, len(storages))
	for _, cs := range storages {
		rows = append(rows, []any{
			cs.ID.String(), cs.Name, cs.Location, cs.Capacity, cs.CurrentStock,
			Utilization(cs.CurrentStock, cs.Capacity), cs.Temperature, cs.Humidity, string(cs.Status),
		})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "could not write %s header", sheet)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "could not write %s row %d", sheet, i+1)
		}
	}
	return nil
}

// Utilization is stock as a whole percentage of capacity, rounded half up.
// An empty capacity has no utilization.
func Utilization(stock, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return (200*stock + capacity) / (2 * capacity)
}
