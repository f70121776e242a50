package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"

	"hvacscan/internal"
)

// LegacyFields are the keys every legacy scanner row must carry.
var LegacyFields = []string{
	"Qty", "Asset Type", "Manufacturer", "Model",
	"Serial Number", "Size", "MFG Year", "Voltage",
	"Refrigerant", "Filter Size", "Filter Qty", "MERV",
	"Location", "Notes",
}

var ErrMissingField = errors.New("missing required fields")

// ValidateInputShape reports whether raw is an object carrying every legacy
// field name. Values are not inspected.
func ValidateInputShape(raw any) bool {
	switch m := raw.(type) {
	case map[string]any:
		return hasAllFields(func(k string) bool { _, ok := m[k]; return ok })
	case map[string]string:
		return hasAllFields(func(k string) bool { _, ok := m[k]; return ok })
	case map[string]json.RawMessage:
		return hasAllFields(func(k string) bool { _, ok := m[k]; return ok })
	default:
		return false
	}
}

func hasAllFields(has func(string) bool) bool {
	for _, f := range LegacyFields {
		if !has(f) {
			return false
		}
	}
	return true
}

// MissingFields lists the legacy fields absent from raw, in LegacyFields order.
func MissingFields(raw map[string]json.RawMessage) []string {
	var out []string
	for _, f := range LegacyFields {
		if _, ok := raw[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}

// DecodeScannerData parses one legacy row and fails closed when any field is absent.
func DecodeScannerData(blob []byte) (internal.ScannerData, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return internal.ScannerData{}, fmt.Errorf("decode scanner data: %w", err)
	}
	if raw == nil || !ValidateInputShape(raw) {
		return internal.ScannerData{}, fmt.Errorf("%w: %v", ErrMissingField, MissingFields(raw))
	}

	var out internal.ScannerData
	if err := json.Unmarshal(blob, &out); err != nil {
		return internal.ScannerData{}, fmt.Errorf("decode scanner data: %w", err)
	}
	return out, nil
}

// DecodeScannerBatch parses a JSON array of legacy rows. The whole batch is
// rejected on the first malformed element.
func DecodeScannerBatch(blob []byte) ([]internal.ScannerData, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, fmt.Errorf("scanner batch must be an array: %w", err)
	}

	out := make([]internal.ScannerData, 0, len(items))
	for i, item := range items {
		data, err := DecodeScannerData(item)
		if err != nil {
			return nil, fmt.Errorf("invalid scanner data at index %d: %w", i, err)
		}
		out = append(out, data)
	}
	return out, nil
}
