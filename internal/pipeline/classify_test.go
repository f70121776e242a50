package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvacscan/internal"
)

func TestClassifyRooftopUnit(t *testing.T) {
	record := internal.EquipmentRecord{Manufacturer: "Trane", Model: "RTU-150", Size: "15 Ton"}

	got := Classify(record)
	require.NotNil(t, got.Suggested)
	assert.Equal(t, "Packaged AC (Cooling Only)", *got.Suggested)
	assert.InDelta(t, 1.08, got.Confidence, 1e-9)

	require.Len(t, got.Alternatives, 3)
	assert.Equal(t, "RTU", got.Alternatives[0].Type)
	assert.InDelta(t, 0.96, got.Alternatives[0].Confidence, 1e-9)
	assert.Equal(t, "Chiller- WC (Centrifugal)", got.Alternatives[1].Type)
	assert.Equal(t, "Chiller- AC Packaged", got.Alternatives[2].Type)
	assert.InDelta(t, 0.45, got.Alternatives[1].Confidence, 1e-9)
	assert.InDelta(t, 0.45, got.Alternatives[2].Confidence, 1e-9)
	assert.False(t, got.NeedsReview(0.7))
}

func TestClassifyNoSignal(t *testing.T) {
	cases := []struct {
		name   string
		record internal.EquipmentRecord
	}{
		{name: "empty", record: internal.EquipmentRecord{}},
		{name: "unrelated text", record: internal.EquipmentRecord{Manufacturer: "Zzz", Model: "Q-9", Notes: "xyz"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.record)
			assert.Nil(t, got.Suggested)
			assert.Zero(t, got.Confidence)
			assert.NotNil(t, got.Alternatives)
			assert.Empty(t, got.Alternatives)
			assert.True(t, got.NeedsReview(0.7))
		})
	}
}

func TestClassifyBelowThreshold(t *testing.T) {
	// Manufacturer alone: 0.3 * 0.9 = 0.27, under the suggestion cut-off.
	got := Classify(internal.EquipmentRecord{Manufacturer: "Cleaver Brooks"})
	assert.Nil(t, got.Suggested)
	assert.InDelta(t, 0.27, got.Confidence, 1e-9)
	require.Len(t, got.Alternatives, 2)
	assert.Equal(t, "Boiler- Hot Water (Electric)", got.Alternatives[0].Type)
	assert.Equal(t, "Boiler", got.Alternatives[1].Type)
}

func TestClassifyIsDeterministic(t *testing.T) {
	record := internal.EquipmentRecord{Manufacturer: "Carrier", Model: "39M AHU", Size: "8000 CFM", Notes: "chilled water coil"}
	first := Classify(record)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Classify(record))
	}
}

func TestClassifierCustomWeights(t *testing.T) {
	w := DefaultWeights()
	w.SuggestThreshold = 2
	c := NewClassifier(w)

	got := c.Classify(internal.EquipmentRecord{Manufacturer: "Trane", Model: "RTU-150", Size: "15 Ton"})
	assert.Nil(t, got.Suggested)
	assert.InDelta(t, 1.08, got.Confidence, 1e-9)
	assert.Len(t, got.Alternatives, 3)
}

func TestSuggestWithExplanation(t *testing.T) {
	got := SuggestWithExplanation(internal.EquipmentRecord{Manufacturer: "Trane", Model: "RTU-150", Size: "15 Ton"})
	require.Len(t, got, 4)
	assert.Equal(t, "Packaged AC (Cooling Only)", got[0].Type)
	assert.Equal(t, `Based on manufacturer "Trane" and model "RTU-150"`, got[0].Explanation)
	assert.Equal(t, "Alternative match with 96% confidence", got[1].Explanation)
	assert.Equal(t, "Alternative match with 45% confidence", got[2].Explanation)

	none := SuggestWithExplanation(internal.EquipmentRecord{Manufacturer: "Cleaver Brooks"})
	require.Len(t, none, 2)
	assert.Equal(t, "Alternative match with 27% confidence", none[0].Explanation)
}

func TestValidateAssetType(t *testing.T) {
	cases := []struct {
		name      string
		record    internal.EquipmentRecord
		assetType string
		valid     bool
	}{
		{name: "boiler with cooling notes", record: internal.EquipmentRecord{Model: "B-200", Notes: "serves chilled loop"}, assetType: "Boiler", valid: false},
		{name: "plain boiler", record: internal.EquipmentRecord{Model: "B-200", Notes: "gas fired"}, assetType: "Boiler", valid: true},
		{name: "chiller with steam", record: internal.EquipmentRecord{Model: "CH-1", Notes: "steam absorption"}, assetType: "Chiller", valid: false},
		{name: "other type ignored", record: internal.EquipmentRecord{Notes: "steam"}, assetType: "Pump", valid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateAssetType(tc.record, tc.assetType)
			assert.Equal(t, tc.valid, got.IsValid)
			assert.Equal(t, !tc.valid, len(got.Warnings) == 1)
		})
	}
}
