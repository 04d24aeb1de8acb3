// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntityOperations counts CRUD operations by entity and operation type.
	EntityOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_entity_operations_total",
		Help: "Total number of entity operations by entity and operation",
	}, []string{"entity", "operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taskboard_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CacheHits counts cache hits by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_cache_hits_total",
		Help: "Total number of cache hits by key prefix",
	}, []string{"prefix"})

	// CacheMisses counts cache misses by key prefix.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_cache_misses_total",
		Help: "Total number of cache misses by key prefix",
	}, []string{"prefix"})

	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})
)

// ObserveQuery records the latency of a database operation started at the
// given time.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
