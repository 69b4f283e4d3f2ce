// Package metrics exposes Prometheus instrumentation for the data-access layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Cache Metrics
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "garmin_cache_hits_total",
		Help: "The total number of facade requests served from cache.",
	}, []string{"kind"})
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "garmin_cache_misses_total",
		Help: "The total number of facade requests that required a remote fetch.",
	}, []string{"kind"})

	// Remote Fetch Metrics
	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "garmin_remote_fetch_seconds",
		Help:    "Duration of remote fetches against the Garmin API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "garmin_remote_fetch_errors_total",
		Help: "The total number of failed remote fetches.",
	}, []string{"kind"})

	// Session Metrics
	Handshakes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "garmin_session_handshakes_total",
		Help: "The total number of login handshakes performed.",
	})
)
