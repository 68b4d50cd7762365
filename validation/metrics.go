package validation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Статусы для метрики validata_scans_total.
const (
	metricStatusPassed = "passed"
	metricStatusFailed = "failed"
	metricStatusError  = "error"
)

var (
	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "validata_scans_total",
		Help: "Total validation scans by terminal status",
	}, []string{"status"})

	testFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "validata_test_failures_total",
		Help: "Total failed scan tests",
	})

	scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "validata_scan_duration_seconds",
		Help:    "Scan build and execution duration",
		Buckets: prometheus.DefBuckets,
	})
)
