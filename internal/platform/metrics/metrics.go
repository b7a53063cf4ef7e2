// Package metrics defines the prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisRunsTotal counts analysis runs by outcome.
	AnalysisRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fno_analysis_runs_total",
		Help: "Number of analysis runs, labeled by outcome.",
	}, []string{"status"})

	// AnalysisRunDuration observes the wall-clock duration of a full run.
	AnalysisRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fno_analysis_run_duration_seconds",
		Help:    "Duration of a full analysis run.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)
