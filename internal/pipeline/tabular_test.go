package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hvacscan/internal"
)

func TestSerializeTabular(t *testing.T) {
	row := ToExportRow(internal.EquipmentRecord{AssetType: "Pump", Manufacturer: "Bell & Gossett", Model: "e-1510", Location: "MER"})

	assert.Equal(t, "", SerializeTabular(nil, true))
	assert.Equal(t, "", SerializeTabular([]internal.ExportRow{}, false))

	body := SerializeTabular([]internal.ExportRow{row}, false)
	assert.NotContains(t, body, "\n")
	cells := strings.Split(body, "\t")
	assert.Len(t, cells, len(ExportHeaders))
	assert.Equal(t, "1", cells[0])
	assert.Equal(t, "Bell & Gossett", cells[2])
	assert.Equal(t, "A-Belt", cells[11])

	withHeaders := SerializeTabular([]internal.ExportRow{row, row}, true)
	lines := strings.Split(withHeaders, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, strings.Join(ExportHeaders, "\t"), lines[0])
	assert.Equal(t, body, lines[1])
}

func TestGenerateExcelFilename(t *testing.T) {
	cases := []struct {
		customer string
		location string
		want     string
	}{
		{customer: "Acme Corp!", location: "Bldg #2", want: "Acme Corp_Bldg 2_Master_PMA_Estimate.xlsx"},
		{customer: "Acme Corp.", location: "Bldg 2", want: "Acme Corp_Bldg 2_Master_PMA_Estimate.xlsx"},
		{customer: "  St. Mary's ", location: "North/South", want: "St Marys_NorthSouth_Master_PMA_Estimate.xlsx"},
		{customer: "", location: "", want: "__Master_PMA_Estimate.xlsx"},
		{customer: "a_b-c", location: "x", want: "a_b-c_x_Master_PMA_Estimate.xlsx"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateExcelFilename(tc.customer, tc.location))
		})
	}
}
