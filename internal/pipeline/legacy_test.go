package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legacyRow(drop string) map[string]any {
	row := map[string]any{}
	for _, f := range LegacyFields {
		row[f] = ""
	}
	row["Qty"] = 2
	row["Asset Type"] = "RTU"
	row["Manufacturer"] = "Trane"
	row["Model"] = "YCD"
	delete(row, drop)
	return row
}

func TestValidateInputShape(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want bool
	}{
		{name: "complete", raw: legacyRow(""), want: true},
		{name: "missing notes", raw: legacyRow("Notes"), want: false},
		{name: "nil", raw: nil, want: false},
		{name: "string", raw: "Qty", want: false},
		{name: "slice", raw: []any{legacyRow("")}, want: false},
		{name: "empty values count", raw: map[string]string{
			"Qty": "", "Asset Type": "", "Manufacturer": "", "Model": "", "Serial Number": "", "Size": "",
			"MFG Year": "", "Voltage": "", "Refrigerant": "", "Filter Size": "", "Filter Qty": "", "MERV": "",
			"Location": "", "Notes": "",
		}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateInputShape(tc.raw))
		})
	}
}

func TestDecodeScannerData(t *testing.T) {
	blob, err := json.Marshal(legacyRow(""))
	require.NoError(t, err)
	got, err := DecodeScannerData(blob)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Qty)
	assert.Equal(t, "YCD", got.Model)

	blob, err = json.Marshal(legacyRow("MERV"))
	require.NoError(t, err)
	_, err = DecodeScannerData(blob)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "MERV")

	_, err = DecodeScannerData([]byte(`null`))
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDecodeScannerBatch(t *testing.T) {
	good := legacyRow("")
	bad := legacyRow("Location")

	blob, err := json.Marshal([]any{good, good})
	require.NoError(t, err)
	rows, err := DecodeScannerBatch(blob)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	blob, err = json.Marshal([]any{good, bad, good})
	require.NoError(t, err)
	_, err = DecodeScannerBatch(blob)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "index 1")

	_, err = DecodeScannerBatch([]byte(`{"Qty":1}`))
	assert.Error(t, err)
}
