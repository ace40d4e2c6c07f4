package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LedgerEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_entries_total",
			Help: "Ledger entries recorded, labelled by entry kind",
		},
		[]string{"kind"},
	)

	ListingCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listing_cache_hits_total",
			Help: "Listing searches served from the Redis cache",
		},
	)

	ListingCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listing_cache_misses_total",
			Help: "Listing searches that required an upstream API call",
		},
	)
)
