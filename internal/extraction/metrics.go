package extraction

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the extraction pipeline.
type Metrics struct {
	// Extraction throughput
	ExtractionsTotal *prometheus.CounterVec

	// Probabilistic extractor failures (timeouts, transport errors,
	// malformed payloads)
	LLMFailuresTotal prometheus.Counter

	// Self-reported confidence of merged results
	Confidence prometheus.Histogram
}

// NewMetrics creates and registers Prometheus metrics for the pipeline.
//
// This function uses sync.Once to ensure metrics are only registered once
// globally, preventing "duplicate metrics collector registration" panics.
//
// Metrics:
//   - extraction_runs_total{mode} - Count of extractions by mode
//   - extraction_llm_failures_total - Count of probabilistic extractor failures
//   - extraction_confidence - Histogram of mean result confidence
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			ExtractionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "extraction_runs_total",
					Help: "Total number of extraction runs",
				},
				[]string{"mode"}, // "deterministic" or "merged"
			),

			LLMFailuresTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "extraction_llm_failures_total",
					Help: "Total number of probabilistic extractor failures",
				},
			),

			Confidence: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "extraction_confidence",
					Help:    "Mean self-reported confidence of extraction results",
					Buckets: prometheus.LinearBuckets(0, 0.1, 11),
				},
			),
		}
	})
	return globalMetrics
}
