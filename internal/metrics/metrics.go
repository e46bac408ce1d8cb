// Package metrics declares the Prometheus collectors served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ViewQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "erpviews",
		Name:      "view_queries_total",
		Help:      "Page view queries by page key and outcome.",
	}, []string{"page", "outcome"})

	ViewQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "erpviews",
		Name:      "view_query_duration_seconds",
		Help:      "Time spent filtering, sorting and paging one page view.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"page"})

	ViewExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "erpviews",
		Name:      "view_exports_total",
		Help:      "Page exports by page key and format.",
	}, []string{"page", "format"})

	Jobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "erpviews",
		Name:      "jobs_total",
		Help:      "Background jobs by kind and result.",
	}, []string{"kind", "result"})

	JobsBusy = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "erpviews",
		Name:      "jobs_processing",
		Help:      "1 while a background job is running.",
	})
)
