// Package metrics provides Prometheus metrics for the ScribeSpace API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scribespace"

var (
	// HTTPRequestsTotal counts handled requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ArticlesPublishedTotal counts publish attempts by outcome.
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_published_total",
			Help:      "Total number of article publish attempts",
		},
		[]string{"status"},
	)

	// ArticleViewsTotal counts successful view increments.
	ArticleViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_views_total",
			Help:      "Total number of recorded article views",
		},
	)

	// CacheRequestsTotal counts cache lookups by key kind and result.
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Total number of article cache lookups",
		},
		[]string{"kind", "result"},
	)

	// MediaUploadBytes observes uploaded object sizes.
	MediaUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "media_upload_bytes",
			Help:      "Size of uploaded media objects in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)

// RecordRequest records one handled HTTP request.
func RecordRequest(method, route string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordPublish records a publish attempt. status is one of
// "ok", "partial" or "error".
func RecordPublish(status string) {
	ArticlesPublishedTotal.WithLabelValues(status).Inc()
}

// RecordView records one view increment.
func RecordView() {
	ArticleViewsTotal.Inc()
}

// RecordCache records a cache hit or miss for kind ("detail" or "list").
func RecordCache(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheRequestsTotal.WithLabelValues(kind, result).Inc()
}

// RecordUpload records the size of a stored object.
func RecordUpload(size int64) {
	MediaUploadBytes.Observe(float64(size))
}
