package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"hvacscan/internal"
	"hvacscan/internal/config"
)

// Weights are the per-category contributions and the suggestion cut-off.
// The defaults are hand-tuned; keep them unless re-validating against
// scanned fixtures.
type Weights struct {
	Manufacturer     float64
	Model            float64
	FreeText         float64
	SizeUnit         float64
	SuggestThreshold float64
	ReviewThreshold  float64
}

func DefaultWeights() Weights {
	return Weights{
		Manufacturer:     0.3,
		Model:            0.4,
		FreeText:         0.3,
		SizeUnit:         0.2,
		SuggestThreshold: 0.3,
		ReviewThreshold:  0.7,
	}
}

func WeightsFromConfig(cfg config.Config) Weights {
	return Weights{
		Manufacturer:     cfg.ClassifyWeightManufacturer,
		Model:            cfg.ClassifyWeightModel,
		FreeText:         cfg.ClassifyWeightFreeText,
		SizeUnit:         cfg.ClassifyWeightSizeUnit,
		SuggestThreshold: cfg.ClassifySuggestThreshold,
		ReviewThreshold:  cfg.ClassifyReviewThreshold,
	}
}

type Candidate struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

type Classification struct {
	Suggested    *string     `json:"suggestedType"`
	Confidence   float64     `json:"confidence"`
	Alternatives []Candidate `json:"alternatives"`
}

// NeedsReview reports whether the suggestion should be confirmed by a person.
func (c Classification) NeedsReview(threshold float64) bool {
	return c.Suggested == nil || c.Confidence < threshold
}

type Suggestion struct {
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

type Classifier struct {
	weights  Weights
	patterns []ClassificationPattern
}

var defaultClassifier = NewClassifier(DefaultWeights())

func NewClassifier(w Weights) *Classifier {
	return &Classifier{weights: w, patterns: equipmentPatterns}
}

func (c *Classifier) Weights() Weights {
	return c.weights
}

// Classify runs the default classifier.
func Classify(record internal.EquipmentRecord) Classification {
	return defaultClassifier.Classify(record)
}

func SuggestWithExplanation(record internal.EquipmentRecord) []Suggestion {
	return defaultClassifier.SuggestWithExplanation(record)
}

func (c *Classifier) Classify(record internal.EquipmentRecord) Classification {
	manufacturer := strings.ToLower(record.Manufacturer)
	model := strings.ToLower(record.Model)
	size := strings.ToLower(record.Size)
	notes := strings.ToLower(record.Notes)
	allText := manufacturer + " " + model + " " + size + " " + notes

	scores := make([]Candidate, 0, len(c.patterns))
	for _, p := range c.patterns {
		score := 0.0
		matches := 0

		if containsAny(manufacturer, p.ManufacturerKeywords) {
			score += c.weights.Manufacturer
			matches++
		}
		if containsAny(model, p.ModelKeywords) {
			score += c.weights.Model
			matches++
		}
		if containsAny(allText, p.FreeTextKeywords) {
			score += c.weights.FreeText
			matches++
		}
		if containsAny(size, p.SizeUnitKeywords) {
			score += c.weights.SizeUnit
			matches++
		}

		if matches > 0 {
			scores = append(scores, Candidate{Type: p.AssetType, Confidence: score * p.BaseConfidence})
		}
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Confidence > scores[j].Confidence })

	out := Classification{Alternatives: []Candidate{}}
	if len(scores) == 0 {
		return out
	}

	out.Confidence = scores[0].Confidence
	if scores[0].Confidence > c.weights.SuggestThreshold {
		suggested := scores[0].Type
		out.Suggested = &suggested
	}

	end := len(scores)
	if end > 4 {
		end = 4
	}
	out.Alternatives = append(out.Alternatives, scores[1:end]...)
	return out
}

func (c *Classifier) SuggestWithExplanation(record internal.EquipmentRecord) []Suggestion {
	detection := c.Classify(record)
	out := make([]Suggestion, 0, len(detection.Alternatives)+1)

	if detection.Suggested != nil {
		out = append(out, Suggestion{
			Type:        *detection.Suggested,
			Confidence:  detection.Confidence,
			Explanation: fmt.Sprintf("Based on manufacturer %q and model %q", record.Manufacturer, record.Model),
		})
	}
	for _, alt := range detection.Alternatives {
		out = append(out, Suggestion{
			Type:        alt.Type,
			Confidence:  alt.Confidence,
			Explanation: fmt.Sprintf("Alternative match with %d%% confidence", int(math.Round(alt.Confidence*100))),
		})
	}
	return out
}

type AssetTypeCheck struct {
	IsValid  bool     `json:"isValid"`
	Warnings []string `json:"warnings"`
}

var (
	coolingKeywords = []string{"cooling", "ac", "air conditioning", "chilled"}
	heatingKeywords = []string{"heating", "boiler", "steam", "hot water"}
)

// ValidateAssetType flags a chosen type that contradicts the model and notes.
func ValidateAssetType(record internal.EquipmentRecord, assetType string) AssetTypeCheck {
	text := strings.ToLower(record.Model + " " + record.Notes)
	warnings := []string{}

	if assetType == "Boiler" && containsAny(text, coolingKeywords) {
		warnings = append(warnings, "Equipment has cooling keywords but was detected as boiler")
	}
	if assetType == "Chiller" && containsAny(text, heatingKeywords) {
		warnings = append(warnings, "Equipment has heating keywords but was detected as chiller")
	}

	return AssetTypeCheck{IsValid: len(warnings) == 0, Warnings: warnings}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
