package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_runs_total",
			Help: "Total number of report evaluations",
		},
		[]string{"report", "status"},
	)

	ReportRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_run_duration_seconds",
			Help:    "Duration of report evaluation including snapshot load",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"report"},
	)
)
