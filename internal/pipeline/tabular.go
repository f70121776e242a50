package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"hvacscan/internal"
)

// ExportHeaders is the fixed Master PMA column order.
var ExportHeaders = []string{
	"QTY",
	"Asset Type & Description (COINS)",
	"MFG",
	"MODEL",
	"SN",
	"SIZE",
	"MFG Year",
	"CUST ID",
	"LOCATION",
	"FILTER CHANGE",
	"COIL CLEAN",
	"Belt Size",
	"Belt QTY per Unit",
	"Filter Size",
	"Filter QTY per Unit",
}

func rowCells(row internal.ExportRow) []string {
	return []string{
		strconv.Itoa(row.Qty),
		row.AssetCode,
		row.MFG,
		row.Model,
		row.SN,
		row.Size,
		row.MfgYear,
		row.CustID,
		row.Location,
		row.FilterChange,
		row.CoilClean,
		row.BeltSize,
		row.BeltQty,
		row.FilterSize,
		row.FilterQty,
	}
}

// SerializeTabular renders rows as tab-separated lines ready for pasting into
// a spreadsheet. Cell text is written as-is.
func SerializeTabular(rows []internal.ExportRow, includeHeaders bool) string {
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(rows)+1)
	if includeHeaders {
		lines = append(lines, strings.Join(ExportHeaders, "\t"))
	}
	for _, row := range rows {
		lines = append(lines, strings.Join(rowCells(row), "\t"))
	}
	return strings.Join(lines, "\n")
}

var reFilenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9 _-]`)

func GenerateExcelFilename(customer, location string) string {
	c := strings.TrimSpace(reFilenameUnsafe.ReplaceAllString(customer, ""))
	l := strings.TrimSpace(reFilenameUnsafe.ReplaceAllString(location, ""))
	return c + "_" + l + "_Master_PMA_Estimate.xlsx"
}
