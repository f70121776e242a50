package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvacscan/internal"
)

func TestCheckDuplicate(t *testing.T) {
	register := []internal.EquipmentRecord{
		{Model: "AHU-500", SerialNumber: "S1", Location: "Roof"},
		{Model: "RTU-150", SerialNumber: "R1"},
		{Model: "AHU-500", SerialNumber: "S2", Location: "Basement"},
	}

	cases := []struct {
		name      string
		candidate internal.EquipmentRecord
		kind      DuplicateKind
		index     int
	}{
		{name: "exact", candidate: internal.EquipmentRecord{Model: "AHU-500", SerialNumber: "S1"}, kind: DuplicateExact, index: 0},
		{name: "exact beats earlier model match", candidate: internal.EquipmentRecord{Model: "AHU-500", SerialNumber: "S2"}, kind: DuplicateExact, index: 2},
		{name: "model only takes first", candidate: internal.EquipmentRecord{Model: "AHU-500", SerialNumber: "S9"}, kind: DuplicateModel, index: 0},
		{name: "empty serial", candidate: internal.EquipmentRecord{Model: "RTU-150"}, kind: DuplicateModel, index: 1},
		{name: "case and spaces folded", candidate: internal.EquipmentRecord{Model: " rtu-150 ", SerialNumber: "r1"}, kind: DuplicateExact, index: 1},
		{name: "new model", candidate: internal.EquipmentRecord{Model: "FCU-1", SerialNumber: "S1"}, kind: DuplicateNone, index: -1},
		{name: "empty model", candidate: internal.EquipmentRecord{SerialNumber: "S1"}, kind: DuplicateNone, index: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckDuplicate(tc.candidate, register)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.index, got.Index)
			assert.Equal(t, tc.kind != DuplicateNone, got.IsDuplicate)
			if tc.index < 0 {
				assert.Nil(t, got.Matched)
				return
			}
			require.NotNil(t, got.Matched)
			assert.Equal(t, register[tc.index], *got.Matched)
		})
	}
}

func TestCheckDuplicateEmptyRegister(t *testing.T) {
	got := CheckDuplicate(internal.EquipmentRecord{Model: "X", SerialNumber: "Y"}, nil)
	assert.False(t, got.IsDuplicate)
	assert.Equal(t, DuplicateNone, got.Kind)
}

func TestCheckDuplicateSameRecord(t *testing.T) {
	record := internal.EquipmentRecord{Model: "AHU-500", SerialNumber: "CAH500-001"}
	got := CheckDuplicate(record, []internal.EquipmentRecord{record})
	assert.True(t, got.IsDuplicate)
	assert.Equal(t, DuplicateExact, got.Kind)
	assert.Equal(t, 0, got.Index)
}

func TestCheckDuplicateBlankRegisterEntries(t *testing.T) {
	register := []internal.EquipmentRecord{{Model: "", SerialNumber: ""}}
	got := CheckDuplicate(internal.EquipmentRecord{}, register)
	assert.False(t, got.IsDuplicate)
}

func TestDuplicateKindDescription(t *testing.T) {
	assert.Equal(t, "Exact duplicate (same model and serial number)", DuplicateExact.Description())
	assert.Equal(t, "Same model number (different serial number)", DuplicateModel.Description())
	assert.Equal(t, "No duplicates found", DuplicateNone.Description())
}
