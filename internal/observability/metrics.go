package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the news API.
// All counters and histograms are registered via promauto with the default
// Prometheus registry, so NewMetrics must be called once per namespace.
type Metrics struct {
	// HTTPRequestsTotal counts handled requests, labeled by method, route pattern and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency in seconds, labeled by method and route pattern.
	HTTPRequestDuration *prometheus.HistogramVec

	// ArticlesListed counts articles returned by listing queries after pagination.
	ArticlesListed prometheus.Counter

	// StoreErrors counts unexpected storage failures, labeled by operation.
	StoreErrors *prometheus.CounterVec

	// VotesApplied counts successful vote adjustments, labeled by entity (article, comment).
	VotesApplied *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ArticlesListed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_listed_total",
			Help:      "Total number of articles returned by listing queries",
		}),
		StoreErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Total number of unexpected storage errors",
		}, []string{"operation"}),
		VotesApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_applied_total",
			Help:      "Total number of vote adjustments applied",
		}, []string{"entity"}),
	}
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordArticlesListed records the number of articles returned by a listing.
func (m *Metrics) RecordArticlesListed(count int) {
	m.ArticlesListed.Add(float64(count))
}

// RecordStoreError records an unexpected storage failure.
func (m *Metrics) RecordStoreError(operation string) {
	m.StoreErrors.WithLabelValues(operation).Inc()
}

// RecordVoteApplied records a successful vote adjustment.
func (m *Metrics) RecordVoteApplied(entity string) {
	m.VotesApplied.WithLabelValues(entity).Inc()
}
