package analyzer

import "strings"

type Category string

const (
	CategoryJaw           Category = "jaw_dysfunction"
	CategoryNeurological  Category = "neurological"
	CategoryPsychological Category = "psychological"
)

// Label renders the category for display, e.g. "jaw dysfunction".
func (c Category) Label() string {
	return strings.Replace(string(c), "_", " ", 1)
}

// SymptomPattern is one matched symptom category for a piece of text.
type SymptomPattern struct {
	Category Category `json:"category"`
	Severity int      `json:"severity"` // 0-10
	Duration string   `json:"duration"`
	Triggers []string `json:"triggers"`
	Related  []string `json:"related"`
}

// Result bundles everything derived from a single text.
type Result struct {
	Patterns        []SymptomPattern
	Recommendations []string
	// Level is the RPM suggestion; zero when HasLevel is false.
	Level    int
	HasLevel bool
}
