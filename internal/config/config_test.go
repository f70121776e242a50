package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLASSIFY_TUNING_FILE", "")
	t.Setenv("CLASSIFY_WEIGHT_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.ClassifyWeightManufacturer)
	assert.Equal(t, 0.4, cfg.ClassifyWeightModel)
	assert.Equal(t, 0.3, cfg.ClassifyWeightFreeText)
	assert.Equal(t, 0.2, cfg.ClassifyWeightSizeUnit)
	assert.Equal(t, 0.3, cfg.ClassifySuggestThreshold)
	assert.Equal(t, 0.7, cfg.ClassifyReviewThreshold)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CLASSIFY_WEIGHT_MODEL", "0.5")
	t.Setenv("CLASSIFY_SUGGEST_THRESHOLD", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.ClassifyWeightModel)
	assert.Equal(t, 0.3, cfg.ClassifySuggestThreshold)
}

func TestTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	blob := []byte("suggest_threshold = 0.45\n\n[weights]\nmodel = 0.6\nsize_unit = 0.1\n")
	require.NoError(t, os.WriteFile(path, blob, 0o644))
	t.Setenv("CLASSIFY_TUNING_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.6, cfg.ClassifyWeightModel)
	assert.Equal(t, 0.1, cfg.ClassifyWeightSizeUnit)
	assert.Equal(t, 0.3, cfg.ClassifyWeightManufacturer)
	assert.Equal(t, 0.45, cfg.ClassifySuggestThreshold)
}

func TestTuningFileMissing(t *testing.T) {
	t.Setenv("CLASSIFY_TUNING_FILE", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}
