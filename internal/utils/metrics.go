package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content Query Metrics
var ContentQueryDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "content_query_duration_seconds",
	Help:    "Duration of content repository queries in seconds.",
	Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
}, []string{"query_type", "repository", "status"})

var ContentQueryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "content_query_errors_total",
	Help: "Total number of failed or missed content queries.",
}, []string{"query_type", "repository"})
