package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Database query latency in seconds.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	// Queries slower than the configured threshold.
	SlowQueryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_slow_query_count",
			Help: "Total number of slow database queries",
		},
		[]string{"command"},
	)

	// Task mutations by operation (created, updated, deleted).
	TaskMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tarea_mutation_count",
			Help: "Total number of task mutations",
		},
		[]string{"operation"},
	)

	// Login attempts by outcome (success, failed).
	LoginAttemptCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempt_count",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	// Status lookup cache hits and misses.
	StatusCacheCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estado_cache_count",
			Help: "Status lookup cache hits and misses",
		},
		[]string{"result"}, // result: hit, miss, error
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func IncrementSlowQuery(command string) {
	SlowQueryCount.WithLabelValues(command).Inc()
}

func IncrementTaskMutation(operation string) {
	TaskMutationCount.WithLabelValues(operation).Inc()
}

func IncrementLoginAttempt(outcome string) {
	LoginAttemptCount.WithLabelValues(outcome).Inc()
}

func IncrementStatusCache(result string) {
	StatusCacheCount.WithLabelValues(result).Inc()
}
