package browse

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tmj-platform/internal/analyzer"
)

func newTestService() Service {
	return NewService(zap.NewNop(), NewMetrics())
}

func TestAnalyze_NoPatterns(t *testing.T) {
	resp := newTestService().Analyze(context.Background(), "")

	assert.Equal(t, greeting, resp.Message)
	assert.Empty(t, resp.Patterns)
	assert.Empty(t, resp.Recommendations)
	assert.Nil(t, resp.RPMSuggestion)

	m, ok := resp.Visualization.Data.(*NeuralMap)
	require.True(t, ok)
	assert.Zero(t, m.NeuralActivity)
	assert.Empty(t, m.State)
	assert.Empty(t, m.StressPoints)

	headings := make([]string, 0, len(resp.PersonalizedContent.Sections))
	for _, s := range resp.PersonalizedContent.Sections {
		headings = append(headings, s.Heading)
	}
	assert.NotContains(t, headings, "Your Nervous System State")
}

func TestAnalyze_SeverityTiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"significant", "severe jaw pain", "significant jaw dysfunction symptoms"},
		{"moderate", "my tmj clicks", "moderate jaw dysfunction issues"},
		{"moderate lower bound", "occasional migraine", "moderate neurological issues"},
		{"mild", "mild anxiety", "mild psychological symptoms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newTestService().Analyze(context.Background(), tt.input)
			assert.Contains(t, resp.Message, tt.contains)
			assert.NotContains(t, resp.Message, "multiple interconnected patterns")
			assert.Contains(t, resp.Message, "I'd suggest starting with: "+resp.Recommendations[0]+".")
		})
	}
}

func TestAnalyze_MultiplePatterns(t *testing.T) {
	resp := newTestService().Analyze(context.Background(), "constant jaw pain, headaches and stress for 2 weeks")

	require.Len(t, resp.Patterns, 3)
	assert.Contains(t, resp.Message, "multiple interconnected patterns: jaw dysfunction, neurological, psychological.")

	require.NotNil(t, resp.RPMSuggestion)
	assert.Equal(t, 800+8*520, *resp.RPMSuggestion)

	m := resp.Visualization.Data.(*NeuralMap)
	require.Len(t, m.StressPoints, 3)
	assert.InDelta(t, 0.8, m.StressPoints[0].Intensity, 1e-9)
	assert.Equal(t, []string{"neck pain", "headaches", "ear fullness"}, m.StressPoints[0].Connections)
	assert.InDelta(t, float64(4960)/6000, m.NeuralActivity, 1e-9)
	assert.Equal(t, "STRESSED", m.State)
	assert.Equal(t, []analyzer.Category{analyzer.CategoryJaw, analyzer.CategoryNeurological, analyzer.CategoryPsychological}, m.AffectedRegions)

	sections := resp.PersonalizedContent.Sections
	require.Len(t, sections, 4)
	assert.Equal(t, reportTitle, resp.PersonalizedContent.Title)
	assert.Equal(t, "JAW DYSFUNCTION: Severity 8/10, Duration: 2 weeks", strings.Split(sections[0].Content, "\n")[0])
	assert.True(t, strings.HasPrefix(sections[2].Content, "Consider jaw relaxation exercises\n• Avoid hard or chewy foods"))
	assert.False(t, sections[2].Interactive)
	assert.Equal(t, "Current stress level indicates 4960 RPM. Use the interactive controls to gradually reduce this to a calm 800 RPM.", sections[3].Content)
}

func TestAnalyze_RecordsMetrics(t *testing.T) {
	m := NewMetrics()
	svc := NewService(zap.NewNop(), m)

	before := testutil.ToFloat64(m.PatternsTotal.WithLabelValues(string(analyzer.CategoryNeurological)))
	beforeEmpty := testutil.ToFloat64(m.NoPatternTotal)

	svc.Analyze(context.Background(), "migraine")
	svc.Analyze(context.Background(), "nothing relevant")

	assert.Equal(t, before+1, testutil.ToFloat64(m.PatternsTotal.WithLabelValues(string(analyzer.CategoryNeurological))))
	assert.Equal(t, beforeEmpty+1, testutil.ToFloat64(m.NoPatternTotal))
}

func TestInfo(t *testing.T) {
	info := newTestService().Info()
	assert.Equal(t, ServiceName, info.Service)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Len(t, info.Capabilities, 4)
}
