// Package analyzer maps free-text symptom descriptions onto a fixed set of
// symptom categories using keyword tables. It holds no state and does no I/O,
// so every function here is safe for concurrent use.
package analyzer

import (
	"errors"
	"math"
	"strings"
)

const (
	MinLevel = 800
	MaxLevel = 6000

	levelStep = 520
)

// ErrNoPatterns is returned by SuggestLevel when there is nothing to average.
var ErrNoPatterns = errors.New("no symptom patterns to score")

// Analyze returns one pattern per matched category, in jaw, neurological,
// psychological order. Text without any category keyword yields an empty slice.
func Analyze(text string) []SymptomPattern {
	lower := strings.ToLower(text)
	patterns := []SymptomPattern{}

	for _, p := range profiles {
		if !containsAny(lower, p.keywords) {
			continue
		}

		triggers := p.staticTriggers
		if triggers == nil {
			triggers = extractTriggers(lower)
		}

		patterns = append(patterns, SymptomPattern{
			Category: p.category,
			Severity: calculateSeverity(lower),
			Duration: extractDuration(lower),
			Triggers: append([]string(nil), triggers...),
			Related:  append([]string(nil), p.related...),
		})
	}

	return patterns
}

// Recommend collects the recommendations for each pattern's category,
// dropping duplicates and keeping first-seen order.
func Recommend(patterns []SymptomPattern) []string {
	recs := []string{}
	seen := make(map[string]struct{})

	for _, p := range patterns {
		for _, r := range recommendationTable[p.Category] {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			recs = append(recs, r)
		}
	}

	return recs
}

// SuggestLevel scales the mean severity onto the [MinLevel, MaxLevel] RPM range.
func SuggestLevel(patterns []SymptomPattern) (int, error) {
	if len(patterns) == 0 {
		return 0, ErrNoPatterns
	}

	sum := 0
	for _, p := range patterns {
		sum += clampSeverity(p.Severity)
	}
	mean := float64(sum) / float64(len(patterns))

	return int(math.Round(MinLevel + mean*levelStep)), nil
}

// Run analyzes text and derives recommendations and, when at least one
// pattern matched, the RPM suggestion.
func Run(text string) Result {
	patterns := Analyze(text)
	res := Result{
		Patterns:        patterns,
		Recommendations: Recommend(patterns),
	}

	level, err := SuggestLevel(patterns)
	if err == nil {
		res.Level = level
		res.HasLevel = true
	}
	return res
}

// StateLabel names the nervous-system state shown on the RPM gauge.
func StateLabel(rpm int) string {
	switch {
	case rpm > 4000:
		return "STRESSED"
	case rpm > 2000:
		return "RESETTING"
	default:
		return "CALM"
	}
}

func calculateSeverity(lower string) int {
	for _, s := range severityTable {
		if strings.Contains(lower, s.keyword) {
			return s.score
		}
	}
	return defaultSeverity
}

func extractDuration(lower string) string {
	for _, re := range durationPatterns {
		if m := re.FindString(lower); m != "" {
			return m
		}
	}
	return unspecifiedDuration
}

func extractTriggers(lower string) []string {
	var triggers []string
	for _, t := range triggerKeywords {
		if strings.Contains(lower, t) {
			triggers = append(triggers, t)
		}
	}
	if len(triggers) == 0 {
		return []string{fallbackTrigger}
	}
	return triggers
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func clampSeverity(s int) int {
	if s < 0 {
		return 0
	}
	if s > 10 {
		return 10
	}
	return s
}
