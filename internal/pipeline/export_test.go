package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hvacscan/internal"
)

func TestWriteMasterPMA(t *testing.T) {
	rows := ToExportRows([]internal.EquipmentRecord{
		{Qty: 2, AssetType: "Air Handler", Manufacturer: "Carrier", Model: "AHU-500", Location: "Roof", FilterSize: "20x20x2", FilterQuantity: "8"},
		{AssetType: "Boiler", Manufacturer: "Burnham", Model: "B-1"},
	})

	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteMasterPMA(buf, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{MasterPMASheet}, f.GetSheetList())
	got, err := f.GetRows(MasterPMASheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ExportHeaders, got[0])
	assert.Equal(t, "2", got[1][0])
	assert.Equal(t, "10-AHU-01 - AHU (with Chilled Water)", got[1][1])
	assert.Equal(t, "A-Belt", got[1][11])
	assert.Equal(t, "8", got[1][14])
	assert.Equal(t, "Burnham", got[2][2])
	assert.Equal(t, "N", got[2][10])
}

func TestExportRowsToXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", GenerateExcelFilename("Acme", "HQ"))
	require.NoError(t, ExportRowsToXLSX(nil, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows(MasterPMASheet)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
