package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	DBPath    string
	OutputDir string
	HTTPAddr  string

	LogLevel  string
	LogFormat string

	DefaultCustomer string
	DefaultLocation string

	ClassifyWeightManufacturer float64
	ClassifyWeightModel        float64
	ClassifyWeightFreeText     float64
	ClassifyWeightSizeUnit     float64
	ClassifySuggestThreshold   float64
	ClassifyReviewThreshold    float64
	ClassifyTuningFile         string
}

// Tuning is the on-disk form of the classifier knobs. Zero values keep the
// env/default setting.
type Tuning struct {
	Weights struct {
		Manufacturer float64 `toml:"manufacturer"`
		Model        float64 `toml:"model"`
		FreeText     float64 `toml:"free_text"`
		SizeUnit     float64 `toml:"size_unit"`
	} `toml:"weights"`
	SuggestThreshold float64 `toml:"suggest_threshold"`
	ReviewThreshold  float64 `toml:"review_threshold"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "register.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		DefaultCustomer: getEnv("DEFAULT_CUSTOMER", "Customer"),
		DefaultLocation: getEnv("DEFAULT_LOCATION", "Location"),

		ClassifyWeightManufacturer: getEnvFloat("CLASSIFY_WEIGHT_MANUFACTURER", 0.3),
		ClassifyWeightModel:        getEnvFloat("CLASSIFY_WEIGHT_MODEL", 0.4),
		ClassifyWeightFreeText:     getEnvFloat("CLASSIFY_WEIGHT_FREETEXT", 0.3),
		ClassifyWeightSizeUnit:     getEnvFloat("CLASSIFY_WEIGHT_SIZE", 0.2),
		ClassifySuggestThreshold:   getEnvFloat("CLASSIFY_SUGGEST_THRESHOLD", 0.3),
		ClassifyReviewThreshold:    getEnvFloat("CLASSIFY_REVIEW_THRESHOLD", 0.7),
		ClassifyTuningFile:         getEnv("CLASSIFY_TUNING_FILE", ""),
	}

	if cfg.ClassifyTuningFile != "" {
		if err := cfg.ApplyTuningFile(cfg.ClassifyTuningFile); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// ApplyTuningFile overrides classifier settings from a TOML file.
func (c *Config) ApplyTuningFile(path string) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	var t Tuning
	if err := toml.Unmarshal(blob, &t); err != nil {
		return fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	c.ApplyTuning(t)
	return nil
}

func (c *Config) ApplyTuning(t Tuning) {
	override := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	override(&c.ClassifyWeightManufacturer, t.Weights.Manufacturer)
	override(&c.ClassifyWeightModel, t.Weights.Model)
	override(&c.ClassifyWeightFreeText, t.Weights.FreeText)
	override(&c.ClassifyWeightSizeUnit, t.Weights.SizeUnit)
	override(&c.ClassifySuggestThreshold, t.SuggestThreshold)
	override(&c.ClassifyReviewThreshold, t.ReviewThreshold)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
