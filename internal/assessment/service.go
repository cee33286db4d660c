// Package assessment scores the sympathetic-lock self-assessment: the share
// of catalog symptoms a visitor selects, bucketed into likelihood levels.
package assessment

import (
	"errors"
	"fmt"
	"math"

	"tmj-platform/internal/content"
)

var (
	ErrNoSymptoms     = errors.New("select at least one symptom")
	ErrUnknownSymptom = errors.New("unknown symptom")
	ErrUnknownVariant = errors.New("unknown assessment variant")
)

type Level string

const (
	LevelHigh     Level = "High"
	LevelModerate Level = "Moderate"
	LevelLow      Level = "Low"
)

// Variant selects the wording: the short checker widget or the full page.
type Variant string

const (
	VariantChecker Variant = "checker"
	VariantFull    Variant = "full"
)

type Group struct {
	Title    string   `json:"title"`
	Symptoms []string `json:"symptoms"`
}

type Catalog struct {
	Groups     []Group  `json:"groups"`
	Phrases    []string `json:"phrases"`
	Validation string   `json:"validation"`
}

type Result struct {
	Score    int      `json:"score"`
	Level    Level    `json:"level"`
	Message  string   `json:"message"`
	Selected []string `json:"selected"`
	NextStep string   `json:"nextStep,omitempty"`
}

// NewCatalog groups the symptom list as the checker presents it.
func NewCatalog() Catalog {
	symptoms := content.Symptoms()
	insights := content.CoreInsights()
	return Catalog{
		Groups: []Group{
			{Title: "Physical Symptoms", Symptoms: symptoms[:3]},
			{Title: "Nervous System Signs", Symptoms: symptoms[3:]},
		},
		Phrases:    insights.PatientLanguage.Recognition,
		Validation: insights.PatientLanguage.Validation,
	}
}

// Score is the rounded percentage of catalog symptoms selected.
func Score(selected, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(selected) / float64(total) * 100))
}

func LevelFor(score int) Level {
	switch {
	case score >= 70:
		return LevelHigh
	case score >= 40:
		return LevelModerate
	default:
		return LevelLow
	}
}

var messages = map[Variant]map[Level]string{
	VariantChecker: {
		LevelHigh:     "Strong indicators of sympathetic lock present",
		LevelModerate: "Several signs of nervous system dysregulation",
		LevelLow:      "Minimal sympathetic lock indicators",
	},
	VariantFull: {
		LevelHigh:     "Your symptoms strongly suggest sympathetic lock. You're not alone - this is more common than you think.",
		LevelModerate: "You're showing several signs of nervous system dysregulation. Early intervention can make a significant difference.",
		LevelLow:      "Your symptoms suggest mild nervous system involvement. Preventive care could help maintain your balance.",
	},
}

// Evaluate validates the selection against the catalog and scores it.
// Duplicates are ignored; the first occurrence keeps its position.
func Evaluate(selected []string, variant Variant) (*Result, error) {
	if variant == "" {
		variant = VariantFull
	}
	wording, ok := messages[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	catalog := content.Symptoms()
	known := make(map[string]struct{}, len(catalog))
	for _, s := range catalog {
		known[s] = struct{}{}
	}

	seen := make(map[string]struct{}, len(selected))
	unique := make([]string, 0, len(selected))
	for _, s := range selected {
		if _, ok := known[s]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymptom, s)
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	if len(unique) == 0 {
		return nil, ErrNoSymptoms
	}

	score := Score(len(unique), len(catalog))
	level := LevelFor(score)

	res := &Result{
		Score:    score,
		Level:    level,
		Message:  wording[level],
		Selected: unique,
	}
	if variant == VariantFull {
		res.NextStep = content.CoreInsights().Treatment.Philosophy
	}
	return res, nil
}
