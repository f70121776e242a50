package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hvacscan/internal"
	"hvacscan/internal/taxonomy"
)

func TestToExportRow(t *testing.T) {
	cases := []struct {
		name   string
		record internal.EquipmentRecord
		want   internal.ExportRow
	}{
		{
			name: "air handler carries filters and belts",
			record: internal.EquipmentRecord{
				Qty: 2, AssetType: "Air Handler", Manufacturer: "Carrier", Model: "AHU-500", SerialNumber: "S1",
				Size: "8000 CFM", MfgYear: "2015", Location: "Roof", FilterSize: "20x20x2", FilterQuantity: "8",
			},
			want: internal.ExportRow{
				Qty: 2, AssetCode: "10-AHU-01 - AHU (with Chilled Water)", MFG: "Carrier", Model: "AHU-500", SN: "S1",
				Size: "8000 CFM", MfgYear: "2015", Location: "Roof", FilterChange: "Y", CoilClean: "Y",
				BeltSize: "A-Belt", BeltQty: "2", FilterSize: "20x20x2", FilterQty: "8",
			},
		},
		{
			name: "boiler drops filter data",
			record: internal.EquipmentRecord{
				AssetType: "Boiler", Manufacturer: "Burnham", Model: "B-1", FilterSize: "16x25x1", FilterQuantity: "2",
			},
			want: internal.ExportRow{
				Qty: 1, AssetCode: "50-BLR-02 - Boiler- Hot Water (Gas)", MFG: "Burnham", Model: "B-1",
				FilterChange: "N", CoilClean: "N",
			},
		},
		{
			name:   "filter flag without filter size",
			record: internal.EquipmentRecord{AssetType: "VAV", Manufacturer: "Titus", Model: "DESV"},
			want: internal.ExportRow{
				Qty: 1, AssetCode: taxonomy.ResolveCode("VAV"), MFG: "Titus", Model: "DESV",
				FilterChange: "Y", CoilClean: "N",
			},
		},
		{
			name:   "unknown type falls back",
			record: internal.EquipmentRecord{AssetType: "Sculpture", Manufacturer: "M", Model: "X"},
			want: internal.ExportRow{
				Qty: 1, AssetCode: "99-OTH-001 - Other-Major", MFG: "M", Model: "X",
				FilterChange: "N", CoilClean: "N",
			},
		},
		{
			name:   "other resolves custom type",
			record: internal.EquipmentRecord{AssetType: internal.AssetTypeOther, CustomAssetType: "RTU", Manufacturer: "Trane", Model: "YCD"},
			want: internal.ExportRow{
				Qty: 1, AssetCode: "00-PKG-01a - Packaged AC (Cooling Only)", MFG: "Trane", Model: "YCD",
				FilterChange: "Y", CoilClean: "Y", BeltSize: "B-Belt", BeltQty: "1",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToExportRow(tc.record)
			assert.Equal(t, tc.want, got)
			assert.Empty(t, got.CustID)
			assert.Equal(t, got, ToExportRow(tc.record))
		})
	}
}

func TestToExportRowsKeepsOrder(t *testing.T) {
	rows := ToExportRows([]internal.EquipmentRecord{{Model: "A"}, {Model: "B"}, {Model: "C"}})
	assert.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0].Model)
	assert.Equal(t, "C", rows[2].Model)
	assert.Empty(t, ToExportRows(nil))
}

func TestScannerDataConversion(t *testing.T) {
	record := internal.EquipmentRecord{
		AssetType: "Fan Coil", Manufacturer: "York", Model: "FC-2", SerialNumber: "9",
		FilterSize: "12x24x1", FilterQuantity: "1", FilterMerv: "8", Voltage: "208V", Refrigerant: "R-410A",
		Location: "Suite 100", Notes: "ceiling",
	}
	legacy := ToScannerData(record)
	assert.Equal(t, 1, legacy.Qty)
	assert.Equal(t, "8", legacy.Merv)
	assert.Equal(t, "1", legacy.FilterQty)

	back := FromScannerData(legacy)
	record.Qty = 1
	assert.Equal(t, record, back)
}
