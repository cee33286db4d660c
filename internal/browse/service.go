package browse

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tmj-platform/internal/analyzer"
)

const (
	ServiceName    = "TMJ AI Browse Assistant"
	ServiceVersion = "1.0.0"

	reportTitle = "Your TMJ Nervous System Analysis"
)

var capabilities = []string{
	"Symptom pattern analysis",
	"Neural visualization generation",
	"Personalized recommendations",
	"RPM state assessment",
}

type Service interface {
	Analyze(ctx context.Context, text string) *Response
	Info() ServiceInfo
}

type service struct {
	logger  *zap.Logger
	metrics *Metrics
}

func NewService(logger *zap.Logger, metrics *Metrics) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{logger: logger, metrics: metrics}
}

func (s *service) Info() ServiceInfo {
	return ServiceInfo{
		Service:      ServiceName,
		Version:      ServiceVersion,
		Capabilities: append([]string(nil), capabilities...),
	}
}

// Analyze runs the keyword analyzer and assembles the display payload.
func (s *service) Analyze(ctx context.Context, text string) *Response {
	res := analyzer.Run(text)
	s.record(res)

	categories := make([]analyzer.Category, 0, len(res.Patterns))
	for _, p := range res.Patterns {
		categories = append(categories, p.Category)
	}
	s.logger.Debug("symptoms analyzed",
		zap.Int("patterns", len(res.Patterns)),
		zap.Any("categories", categories),
		zap.Int("rpm", res.Level),
	)

	resp := &Response{
		Message:         conversationalMessage(res.Patterns, res.Recommendations),
		Visualization:   Visualization{Data: neuralMap(res)},
		Patterns:        res.Patterns,
		Recommendations: res.Recommendations,
		PersonalizedContent: PersonalizedContent{
			Title:    reportTitle,
			Sections: sections(res),
		},
	}
	if res.HasLevel {
		level := res.Level
		resp.RPMSuggestion = &level
	}
	return resp
}

func (s *service) record(res analyzer.Result) {
	if s.metrics == nil {
		return
	}
	s.metrics.AnalysesTotal.Inc()
	if !res.HasLevel {
		s.metrics.NoPatternTotal.Inc()
		return
	}
	for _, p := range res.Patterns {
		s.metrics.PatternsTotal.WithLabelValues(string(p.Category)).Inc()
	}
	s.metrics.RPMSuggestion.Observe(float64(res.Level))
}

func neuralMap(res analyzer.Result) *NeuralMap {
	m := &NeuralMap{
		StressPoints:    make([]StressPoint, 0, len(res.Patterns)),
		AffectedRegions: make([]analyzer.Category, 0, len(res.Patterns)),
	}
	for _, p := range res.Patterns {
		m.StressPoints = append(m.StressPoints, StressPoint{
			Location:    p.Category,
			Intensity:   float64(p.Severity) / 10,
			Connections: p.Related,
		})
		m.AffectedRegions = append(m.AffectedRegions, p.Category)
	}
	if res.HasLevel {
		m.NeuralActivity = float64(res.Level) / analyzer.MaxLevel
		m.State = analyzer.StateLabel(res.Level)
	}
	return m
}

func sections(res analyzer.Result) []Section {
	lines := make([]string, 0, len(res.Patterns))
	for _, p := range res.Patterns {
		lines = append(lines, fmt.Sprintf("%s: Severity %d/10, Duration: %s",
			strings.ToUpper(p.Category.Label()), p.Severity, p.Duration))
	}

	out := []Section{
		{
			Heading:     "Identified Patterns",
			Content:     strings.Join(lines, "\n"),
			Interactive: true,
		},
		{
			Heading:     "Neural Connections",
			Content:     "Your symptoms show interconnected patterns across multiple body systems. The visualization shows how jaw dysfunction can cascade through your nervous system.",
			Interactive: true,
		},
		{
			Heading:     "Personalized Recommendations",
			Content:     strings.Join(res.Recommendations, "\n• "),
			Interactive: false,
		},
	}

	if res.HasLevel {
		out = append(out, Section{
			Heading:     "Your Nervous System State",
			Content:     fmt.Sprintf("Current stress level indicates %d RPM. Use the interactive controls to gradually reduce this to a calm %d RPM.", res.Level, analyzer.MinLevel),
			Interactive: true,
		})
	}
	return out
}

const greeting = "I'm here to help you understand your TMJ and nervous system connection. Could you describe what you're experiencing? For example, any jaw pain, headaches, or stress-related symptoms?"

func conversationalMessage(patterns []analyzer.SymptomPattern, recs []string) string {
	if len(patterns) == 0 {
		return greeting
	}

	primary := patterns[0]
	label := primary.Category.Label()

	var b strings.Builder
	switch {
	case primary.Severity >= 7:
		fmt.Fprintf(&b, "I understand you're experiencing significant %s symptoms. This level of discomfort often indicates your nervous system is in a heightened state of alert. ", label)
	case primary.Severity >= 4:
		fmt.Fprintf(&b, "I see you're dealing with moderate %s issues. This is quite common with TMJ dysfunction and shows your nervous system is trying to adapt. ", label)
	default:
		fmt.Fprintf(&b, "You're experiencing mild %s symptoms, which is a good sign that your nervous system hasn't become overly sensitized. ", label)
	}

	if len(patterns) > 1 {
		labels := make([]string, len(patterns))
		for i, p := range patterns {
			labels[i] = p.Category.Label()
		}
		fmt.Fprintf(&b, "\n\nInterestingly, I've identified multiple interconnected patterns: %s. This interconnection is typical of TMJ-related nervous system dysfunction.", strings.Join(labels, ", "))
	}

	// Every matched category contributes recommendations, so recs is non-empty here.
	fmt.Fprintf(&b, "\n\nBased on your symptoms, I'd suggest starting with: %s. The visualization I'm creating will show you exactly how these patterns affect your nervous system.", recs[0])

	return b.String()
}
