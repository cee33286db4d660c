// Package content holds the practice's static copy: the core insights, the
// testimonials shown in the carousel, navigation and page metadata.
package content

// Accessors return fresh copies so callers cannot mutate the shared data.

func CoreInsights() Insights {
	return Insights{
		Core: Core{
			Discovery:          "TMJ isn't a jaw problem - it's nervous system locked in fight-or-flight",
			Tagline:            "What if TMJ isn't about your jaw?",
			Mission:            "40 years of revolutionary practice changing how we understand chronic pain",
			BreakthroughMoment: "Every successfully treated patient says 'you reset my nervous system' - not 'you fixed my jaw'",
		},
		SympatheticLock: SympatheticLock{
			Definition: "Terminal feedback loops where the nervous system gets stuck at high RPM",
			Analogy: Analogy{
				Title:       "The Engine That Can't Idle",
				Description: "Like a car engine stuck at 6000 RPM that needs hand-cranking to reset",
				BeforeRPM:   6000,
				AfterRPM:    800,
				Visual:      "Your body stuck in startup mode, unable to find neutral",
			},
			Symptoms: Symptoms(),
		},
		PatientLanguage: PatientLanguage{
			Recognition: RecognitionPhrases(),
			Validation:  "Patients instinctively know what they need - we just have to listen",
		},
		ClinicalEvidence: ClinicalEvidence{
			Experience:    "40 years of clinical practice",
			PatientCount:  "Thousands of successful cases",
			CovidImpact:   "1 in 5-6 teenagers now showing sympathetic lock symptoms post-COVID",
			ParadigmShift: "From mechanical jaw problem to nervous system dysregulation",
		},
		DualAudience: DualAudience{
			Practitioners: AudienceProfile{
				Title: "For Healthcare Providers",
				Focus: "Evidence-based protocols for sympathetic lock treatment",
				Benefits: []string{
					"Understand the neuroscience behind TMJ",
					"Learn assessment techniques that work",
					"Access clinical protocols with proven outcomes",
					"Join a revolutionary paradigm shift",
				},
			},
			Patients: AudienceProfile{
				Title: "For Those Seeking Answers",
				Focus: "Finally understand why your body feels stuck",
				Benefits: []string{
					"Recognize your symptoms aren't 'in your head'",
					"Understand why traditional treatments failed",
					"Learn what your body is trying to tell you",
					"Find hope in a revolutionary approach",
				},
			},
		},
		Treatment: Treatment{
			Philosophy:     "Manual nervous system reset - like hand-cranking an old engine",
			Approach:       "Address the system, not just the symptom",
			Timeline:       "Immediate relief possible when treating the right problem",
			Sustainability: "Teaching the body to find neutral again",
		},
		CallToAction: CallToAction{
			Primary:      "Ready to Reset Your System?",
			Secondary:    "Join the Revolution in TMJ Treatment",
			Practitioner: "Learn the Sympathetic Lock Protocol",
			Patient:      "Find Out If You Have Sympathetic Lock",
		},
	}
}

// Symptoms lists the sympathetic-lock symptoms in display order. The first
// three are physical, the last three nervous-system signs.
func Symptoms() []string {
	return []string{
		"Jaw pain that won't resolve",
		"Whole body tension patterns",
		"Can't calm down feeling",
		"Sleep disruption despite exhaustion",
		"Digestive issues with no clear cause",
		"Anxiety that's physical not mental",
	}
}

func RecognitionPhrases() []string {
	return []string{
		"I feel like my whole body is connected to my jaw",
		"I can't calm down no matter what I try",
		"Something is systemically wrong but tests are normal",
		"I need my nervous system reset",
		"It's like I'm stuck in fight mode",
	}
}

func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Text:      "After 10 years of jaw pain, Dr. Gerardo showed me it wasn't about my jaw at all. One session and my whole body finally relaxed.",
			Author:    "Sarah M.",
			Condition: "Chronic TMJ",
			Outcome:   "Complete resolution",
		},
		{
			Text:      "He saw in 30 seconds what dozens of specialists missed. My nervous system was stuck, not broken.",
			Author:    "Michael R.",
			Condition: "Post-COVID syndrome",
			Outcome:   "Full recovery",
		},
		{
			Text:      "I told him 'I need my nervous system reset' and he said 'That's exactly right.' First doctor who actually heard me.",
			Author:    "Jennifer K.",
			Condition: "Sympathetic lock",
			Outcome:   "Life transformed",
		},
	}
}

// PractitionerTestimonials keeps the outcomes shown in practitioner mode.
func PractitionerTestimonials() []Testimonial {
	var out []Testimonial
	for _, t := range Testimonials() {
		if t.Outcome == "Full recovery" || t.Outcome == "Life transformed" {
			out = append(out, t)
		}
	}
	return out
}

func Navigation() []NavLink {
	return []NavLink{
		{Href: "/", Label: "Home"},
		{Href: "/discovery", Label: "The Discovery"},
		{Href: "/assessment", Label: "Self-Assessment"},
		{Href: "/practitioners", Label: "For Practitioners"},
		{Href: "/patients", Label: "For Patients"},
		{Href: "/contact", Label: "Get Started"},
	}
}

func Metadata() SiteMetadata {
	return SiteMetadata{
		Title:       "TMJ Revolutionary - Dr. Gerardo's Sympathetic Lock Discovery",
		Description: "After 40 years of practice, Dr. Gerardo discovered TMJ isn't a jaw problem - it's your nervous system stuck in fight-or-flight. Learn about the revolutionary sympathetic lock treatment.",
		Author:      "Dr. Gerardo",
		Keywords:    "TMJ, sympathetic lock, nervous system reset, chronic pain, Dr. Gerardo, revolutionary treatment",
	}
}

func SiteContent() Site {
	return Site{
		Insights:     CoreInsights(),
		Testimonials: Testimonials(),
		Navigation:   Navigation(),
		Metadata:     Metadata(),
	}
}

// NextIndex and PrevIndex step through a carousel of n items, wrapping at
// both ends. They return 0 when n is not positive.
func NextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+1)%n + n) % n
}

func PrevIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i-1)%n + n) % n
}
