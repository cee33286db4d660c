package browse

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

type Metrics struct {
	AnalysesTotal   prometheus.Counter
	PatternsTotal   *prometheus.CounterVec
	NoPatternTotal  prometheus.Counter
	RPMSuggestion   prometheus.Histogram
	ReportsRendered *prometheus.CounterVec
}

// NewMetrics registers the browse metrics once per process.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			AnalysesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "browse_analyses_total",
				Help: "Total number of symptom texts analyzed",
			}),
			PatternsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "browse_patterns_total",
					Help: "Symptom patterns matched, by category",
				},
				[]string{"category"},
			),
			NoPatternTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "browse_no_pattern_total",
				Help: "Analyses where no symptom category matched",
			}),
			RPMSuggestion: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "browse_rpm_suggestion",
				Help:    "Distribution of suggested RPM values",
				Buckets: prometheus.LinearBuckets(800, 520, 11),
			}),
			ReportsRendered: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "browse_reports_total",
					Help: "PDF analysis reports, by outcome",
				},
				[]string{"outcome"},
			),
		}
	})
	return globalMetrics
}
