package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"hvacscan/internal"
	"hvacscan/internal/util"
)

var ErrNoJSON = errors.New("no JSON object in extraction response")

// ParseExtraction pulls the first {...} span out of a vision model reply and
// maps it onto a record. Location is user-entered and never taken from the
// reply.
func ParseExtraction(text string) (internal.EquipmentRecord, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return internal.EquipmentRecord{}, ErrNoJSON
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return internal.EquipmentRecord{}, fmt.Errorf("parse extraction response: %w", err)
	}

	str := func(key string) string { return stringValue(raw[key]) }
	record := internal.EquipmentRecord{
		Qty:                 1,
		AssetType:           str("assetType"),
		Manufacturer:        str("manufacturer"),
		Model:               str("model"),
		SerialNumber:        str("serialNumber"),
		Size:                str("size"),
		MfgYear:             str("mfgYear"),
		Notes:               str("notes"),
		FilterSize:          str("filterSize"),
		FilterType:          str("filterType"),
		FilterMerv:          str("filterMerv"),
		FilterQuantity:      str("filterQuantity"),
		Voltage:             str("voltage"),
		Refrigerant:         str("refrigerant"),
		MaintenanceInterval: str("maintenanceInterval"),
	}
	if qty, ok := raw["qty"].(float64); ok && qty >= 1 {
		record.Qty = int(qty)
	}
	return EnrichFromNotes(record), nil
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

var (
	reNotesVoltage     = regexp.MustCompile(`(?i)(\d{3,4})\s*V`)
	reNotesRefrigerant = regexp.MustCompile(`(?i)R-?(\d{3}[A-Z]?)`)
	reNotesSize        = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:ton|btu|kw|hp)`)
	reNotesYear        = regexp.MustCompile(`(\d{4})`)
)

// EnrichFromNotes fills empty voltage, refrigerant, size and year from the
// free-text notes. Populated fields are left alone.
func EnrichFromNotes(record internal.EquipmentRecord) internal.EquipmentRecord {
	notes := record.Notes
	if notes == "" {
		return record
	}
	if record.Voltage == "" {
		if m := reNotesVoltage.FindStringSubmatch(notes); m != nil {
			record.Voltage = m[1] + "V"
		}
	}
	if record.Refrigerant == "" {
		if m := reNotesRefrigerant.FindStringSubmatch(notes); m != nil {
			record.Refrigerant = "R-" + m[1]
		}
	}
	if record.Size == "" {
		if m := reNotesSize.FindString(notes); m != "" {
			record.Size = m
		}
	}
	if record.MfgYear == "" {
		if m := reNotesYear.FindStringSubmatch(notes); m != nil {
			record.MfgYear = m[1]
		}
	}
	return record
}

// ParseEquipmentListXLSX reads a legacy equipment list workbook. The header
// row may sit below a short preamble; every legacy column must be present or
// the whole workbook is rejected.
func ParseEquipmentListXLSX(content []byte) ([]internal.ScannerData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if idx, err := f.GetSheetIndex(EquipmentListSheet); err == nil && idx >= 0 {
		sheet = EquipmentListSheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	headerRow := -1
	columns := map[string]int{}
	for i, row := range rows {
		if i >= 5 {
			break
		}
		cells := normalizeCells(row)
		if findHeaderIndex(cells, "Asset Type") >= 0 {
			headerRow = i
			for j, c := range cells {
				name, ok := canonicalHeader(c)
				if !ok {
					continue
				}
				if _, seen := columns[name]; !seen {
					columns[name] = j
				}
			}
			break
		}
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("%w: header row not found", ErrMissingField)
	}
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingField, missing)
	}

	out := []internal.ScannerData{}
	for i := headerRow + 1; i < len(rows); i++ {
		cells := normalizeCells(rows[i])
		if isBlankRow(cells) {
			continue
		}

		raw := make(map[string]string, len(columns))
		for name, idx := range columns {
			raw[name] = pickCell(cells, idx)
		}

		qty, err := parseQtyCell(raw["Qty"])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, internal.ScannerData{
			Qty:          qty,
			AssetType:    raw["Asset Type"],
			Manufacturer: raw["Manufacturer"],
			Model:        raw["Model"],
			SerialNumber: raw["Serial Number"],
			Size:         raw["Size"],
			MfgYear:      raw["MFG Year"],
			Voltage:      raw["Voltage"],
			Refrigerant:  raw["Refrigerant"],
			FilterSize:   raw["Filter Size"],
			FilterQty:    raw["Filter Qty"],
			Merv:         raw["MERV"],
			Location:     raw["Location"],
			Notes:        raw["Notes"],
		})
	}
	return out, nil
}

func parseQtyCell(cell string) (int, error) {
	qty, ok := util.ParseQty(cell)
	if !ok {
		return 0, fmt.Errorf("invalid qty %q", cell)
	}
	return qty, nil
}

func missingColumns(columns map[string]int) []string {
	var out []string
	for _, name := range LegacyFields {
		if _, ok := columns[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

func normalizeCells(row []string) []string {
	out := make([]string, 0, len(row))
	for _, c := range row {
		out = append(out, util.NormalizeSpaces(c))
	}
	return out
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// canonicalHeader maps a header cell onto its legacy field name, ignoring case.
func canonicalHeader(cell string) (string, bool) {
	for _, name := range LegacyFields {
		if strings.EqualFold(cell, name) {
			return name, true
		}
	}
	return "", false
}

func findHeaderIndex(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

func pickCell(cells []string, idx int) string {
	if idx >= 0 && idx < len(cells) {
		return cells[idx]
	}
	return ""
}
