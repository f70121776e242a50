package pipeline

import (
	"hvacscan/internal"
	"hvacscan/internal/util"
)

type DuplicateKind string

const (
	DuplicateExact DuplicateKind = "exact"
	DuplicateModel DuplicateKind = "model"
	DuplicateNone  DuplicateKind = "none"
)

func (k DuplicateKind) Description() string {
	switch k {
	case DuplicateExact:
		return "Exact duplicate (same model and serial number)"
	case DuplicateModel:
		return "Same model number (different serial number)"
	case DuplicateNone:
		return "No duplicates found"
	default:
		return "Unknown duplicate type"
	}
}

type DuplicateResult struct {
	IsDuplicate bool                      `json:"isDuplicate"`
	Kind        DuplicateKind             `json:"duplicateType"`
	Matched     *internal.EquipmentRecord `json:"existingEquipment"`
	// Index is the register position of Matched, -1 when there is none.
	Index int `json:"index"`
}

// CheckDuplicate compares candidate against register. A model+serial match
// anywhere in the register outranks an earlier model-only match; within a
// tier the first entry in register order wins.
func CheckDuplicate(candidate internal.EquipmentRecord, register []internal.EquipmentRecord) DuplicateResult {
	model := util.FoldKey(candidate.Model)
	serial := util.FoldKey(candidate.SerialNumber)

	if model != "" && serial != "" {
		for i := range register {
			if util.FoldKey(register[i].Model) == model && util.FoldKey(register[i].SerialNumber) == serial {
				return matched(DuplicateExact, register, i)
			}
		}
	}

	if model != "" {
		for i := range register {
			if util.FoldKey(register[i].Model) == model {
				return matched(DuplicateModel, register, i)
			}
		}
	}

	return DuplicateResult{IsDuplicate: false, Kind: DuplicateNone, Matched: nil, Index: -1}
}

func matched(kind DuplicateKind, register []internal.EquipmentRecord, i int) DuplicateResult {
	rec := register[i]
	return DuplicateResult{IsDuplicate: true, Kind: kind, Matched: &rec, Index: i}
}
