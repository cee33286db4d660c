package analyzer

import "regexp"

type categoryProfile struct {
	category Category
	keywords []string
	related  []string
	// staticTriggers replaces text-derived triggers when set.
	staticTriggers []string
}

// Checked in this order; the order of emitted patterns follows it.
var profiles = []categoryProfile{
	{
		category: CategoryJaw,
		keywords: []string{"jaw", "tmj"},
		related:  []string{"neck pain", "headaches", "ear fullness"},
	},
	{
		category: CategoryNeurological,
		keywords: []string{"headache", "migraine"},
		related:  []string{"light sensitivity", "nausea", "dizziness"},
	},
	{
		category:       CategoryPsychological,
		keywords:       []string{"stress", "anxiety"},
		related:        []string{"teeth grinding", "muscle tension", "sleep issues"},
		staticTriggers: []string{"work", "sleep deprivation", "life events"},
	},
}

type severityKeyword struct {
	keyword string
	score   int
}

// Scanned in declaration order, not input order.
var severityTable = []severityKeyword{
	{"mild", 3},
	{"moderate", 5},
	{"severe", 8},
	{"extreme", 10},
	{"unbearable", 10},
	{"constant", 8},
	{"occasional", 4},
}

const defaultSeverity = 5

var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(day|week|month|year)s?`),
	regexp.MustCompile(`(chronic|acute|recent|long-term)`),
}

const unspecifiedDuration = "unspecified"

var triggerKeywords = []string{
	"stress", "eating", "talking", "morning", "night",
	"cold", "heat", "chewing", "yawning", "sleeping",
}

const fallbackTrigger = "various"

var recommendationTable = map[Category][]string{
	CategoryJaw: {
		"Consider jaw relaxation exercises",
		"Avoid hard or chewy foods",
		"Apply warm compress to jaw muscles",
		"Practice proper posture alignment",
	},
	CategoryNeurological: {
		"Track headache triggers in a journal",
		"Maintain regular sleep schedule",
		"Consider stress reduction techniques",
		"Stay hydrated throughout the day",
	},
	CategoryPsychological: {
		"Practice mindfulness meditation",
		"Engage in regular physical activity",
		"Consider cognitive behavioral therapy",
		"Develop healthy sleep hygiene",
	},
}
