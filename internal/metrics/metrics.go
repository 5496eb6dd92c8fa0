package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nevod_store_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nevod_store_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MediaFilesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nevod_store_media_files_stored_total",
			Help: "Total number of media files written to storage",
		},
		[]string{"dir"},
	)

	MediaFilesRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nevod_store_media_files_removed_total",
			Help: "Total number of media files removed from storage",
		},
	)
)
