package pipeline

import (
	"hvacscan/internal"
	"hvacscan/internal/taxonomy"
)

// ToExportRow maps a record onto the Master PMA columns. Feature flags from
// the taxonomy gate the filter and belt columns regardless of what the record
// carries.
func ToExportRow(record internal.EquipmentRecord) internal.ExportRow {
	assetType := record.EffectiveAssetType()
	features := taxonomy.ResolveFeatures(assetType)

	row := internal.ExportRow{
		Qty:          record.Quantity(),
		AssetCode:    taxonomy.ResolveCode(assetType),
		MFG:          record.Manufacturer,
		Model:        record.Model,
		SN:           record.SerialNumber,
		Size:         record.Size,
		MfgYear:      record.MfgYear,
		CustID:       "",
		Location:     record.Location,
		FilterChange: yesNo(features.HasFilters),
		CoilClean:    yesNo(features.NeedsCoilCleaning),
	}
	if features.HasBelts {
		row.BeltSize = features.BeltDefault.Size
		row.BeltQty = features.BeltDefault.Qty
	}
	if features.HasFilters {
		row.FilterSize = record.FilterSize
		row.FilterQty = record.FilterQuantity
	}
	return row
}

func ToExportRows(records []internal.EquipmentRecord) []internal.ExportRow {
	out := make([]internal.ExportRow, 0, len(records))
	for _, r := range records {
		out = append(out, ToExportRow(r))
	}
	return out
}

// ToScannerData converts a record to the legacy 14-field shape.
func ToScannerData(record internal.EquipmentRecord) internal.ScannerData {
	return internal.ScannerData{
		Qty:          record.Quantity(),
		AssetType:    record.EffectiveAssetType(),
		Manufacturer: record.Manufacturer,
		Model:        record.Model,
		SerialNumber: record.SerialNumber,
		Size:         record.Size,
		MfgYear:      record.MfgYear,
		Voltage:      record.Voltage,
		Refrigerant:  record.Refrigerant,
		FilterSize:   record.FilterSize,
		FilterQty:    record.FilterQuantity,
		Merv:         record.FilterMerv,
		Location:     record.Location,
		Notes:        record.Notes,
	}
}

func FromScannerData(s internal.ScannerData) internal.EquipmentRecord {
	return internal.EquipmentRecord{
		Qty:            s.Qty,
		AssetType:      s.AssetType,
		Manufacturer:   s.Manufacturer,
		Model:          s.Model,
		SerialNumber:   s.SerialNumber,
		Size:           s.Size,
		MfgYear:        s.MfgYear,
		Voltage:        s.Voltage,
		Refrigerant:    s.Refrigerant,
		FilterSize:     s.FilterSize,
		FilterQuantity: s.FilterQty,
		FilterMerv:     s.Merv,
		Location:       s.Location,
		Notes:          s.Notes,
	}
}

func yesNo(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}
