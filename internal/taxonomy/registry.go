// Package taxonomy maps canonical equipment types to COINS contract codes and
// to the maintenance features a Master PMA estimate needs (filters, coil
// cleaning, belts). Tables are built once at package init and never mutated.
//
// Code lookup and feature lookup are independent: a feature set may name a
// type the code table does not carry and vice versa.
package taxonomy

type BeltDefault struct {
	Size string `json:"size"`
	Qty  string `json:"qty"`
}

type Features struct {
	HasFilters        bool        `json:"hasFilters"`
	NeedsCoilCleaning bool        `json:"needsCoilCleaning"`
	HasBelts          bool        `json:"hasBelts"`
	BeltDefault       BeltDefault `json:"beltInfo"`
}

// FeatureTable is the serializable form of the feature sets.
type FeatureTable struct {
	WithFilters      []string               `json:"withFilters"`
	WithCoilCleaning []string               `json:"withCoilCleaning"`
	WithBelts        []string               `json:"withBelts"`
	BeltDefaults     map[string]BeltDefault `json:"beltDefaults"`
}

var (
	withFilters      = []string{"Air Handler", "RTU", "Packaged Unit", "Fan Coil", "VAV"}
	withCoilCleaning = []string{"Air Handler", "RTU", "Packaged Unit", "Heat Pump", "Fan Coil", "Chiller", "Cooling Tower"}
	withBelts        = []string{"Air Handler", "RTU", "Packaged Unit", "Fan", "Pump", "Cooling Tower"}

	beltDefaults = map[string]BeltDefault{
		"Air Handler":   {Size: "A-Belt", Qty: "2"},
		"RTU":           {Size: "B-Belt", Qty: "1"},
		"Packaged Unit": {Size: "B-Belt", Qty: "1"},
		"Fan":           {Size: "A-Belt", Qty: "1"},
		"Pump":          {Size: "A-Belt", Qty: "1"},
		"Cooling Tower": {Size: "B-Belt", Qty: "2"},
	}
)

var (
	codeByName      = indexCodes(codeTable)
	filterSet       = setOf(withFilters)
	coilCleaningSet = setOf(withCoilCleaning)
	beltSet         = setOf(withBelts)
)

func indexCodes(entries []entry) map[string]string {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, dup := out[e.name]; dup {
			continue
		}
		out[e.name] = e.code
	}
	return out
}

func setOf(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// ResolveCode returns the contract code for assetType, or the default code
// when the type is unknown. Keys match exactly.
func ResolveCode(assetType string) string {
	if code, ok := codeByName[assetType]; ok {
		return code
	}
	return codeByName[DefaultKey]
}

// IsKnown reports whether assetType is a registry key other than the default.
func IsKnown(assetType string) bool {
	if assetType == DefaultKey {
		return false
	}
	_, ok := codeByName[assetType]
	return ok
}

func ResolveFeatures(assetType string) Features {
	_, hasFilters := filterSet[assetType]
	_, coil := coilCleaningSet[assetType]
	_, hasBelts := beltSet[assetType]

	f := Features{HasFilters: hasFilters, NeedsCoilCleaning: coil, HasBelts: hasBelts}
	if hasBelts {
		f.BeltDefault = beltDefaults[assetType]
	}
	return f
}

// KnownTypes lists every registry key except the default, in registration order.
func KnownTypes() []string {
	out := make([]string, 0, len(codeTable))
	seen := make(map[string]struct{}, len(codeTable))
	for _, e := range codeTable {
		if e.name == DefaultKey {
			continue
		}
		if _, ok := seen[e.name]; ok {
			continue
		}
		seen[e.name] = struct{}{}
		out = append(out, e.name)
	}
	return out
}

// Codes returns a copy of the full code table including the default entry.
func Codes() map[string]string {
	out := make(map[string]string, len(codeByName))
	for k, v := range codeByName {
		out[k] = v
	}
	return out
}

func Table() FeatureTable {
	belts := make(map[string]BeltDefault, len(beltDefaults))
	for k, v := range beltDefaults {
		belts[k] = v
	}
	return FeatureTable{
		WithFilters:      append([]string(nil), withFilters...),
		WithCoilCleaning: append([]string(nil), withCoilCleaning...),
		WithBelts:        append([]string(nil), withBelts...),
		BeltDefaults:     belts,
	}
}
