package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"hvacscan/internal"
)

const (
	MasterPMASheet     = "Master PMA Estimate"
	EquipmentListSheet = "Equipment List"
)

// WriteMasterPMA writes rows as a single-sheet workbook.
func WriteMasterPMA(w io.Writer, rows []internal.ExportRow) error {
	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		values = append(values, []any{
			row.Qty, row.AssetCode, row.MFG, row.Model, row.SN, row.Size, row.MfgYear, row.CustID,
			row.Location, row.FilterChange, row.CoilClean, row.BeltSize, row.BeltQty, row.FilterSize, row.FilterQty,
		})
	}
	return writeSheet(w, MasterPMASheet, ExportHeaders, values)
}

func ExportRowsToXLSX(rows []internal.ExportRow, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := WriteMasterPMA(out, rows); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// WriteEquipmentList writes records in the legacy 14-column layout, which
// ParseEquipmentListXLSX reads back.
func WriteEquipmentList(w io.Writer, records []internal.EquipmentRecord) error {
	values := make([][]any, 0, len(records))
	for _, r := range records {
		s := ToScannerData(r)
		values = append(values, []any{
			s.Qty, s.AssetType, s.Manufacturer, s.Model, s.SerialNumber, s.Size, s.MfgYear,
			s.Voltage, s.Refrigerant, s.FilterSize, s.FilterQty, s.Merv, s.Location, s.Notes,
		})
	}
	return writeSheet(w, EquipmentListSheet, LegacyFields, values)
}

func writeSheet(w io.Writer, sheetName string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}
