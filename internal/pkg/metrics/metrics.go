package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medicore_admin_http_requests_total",
		Help: "Count of handled HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "medicore_admin_http_request_duration_seconds",
		Help:    "Latency of handled HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medicore_admin_cache_hits_total",
		Help: "Query cache hits by cache group.",
	}, []string{"group"})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medicore_admin_cache_misses_total",
		Help: "Query cache misses by cache group.",
	}, []string{"group"})

	PlatformRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medicore_admin_platform_requests_total",
		Help: "Outbound platform API calls by resource and outcome.",
	}, []string{"resource", "outcome"})

	AuditEventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicore_admin_audit_events_published_total",
		Help: "Audit events published to the queue.",
	})

	AuditEventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medicore_admin_audit_events_dropped_total",
		Help: "Audit events dropped because the publish failed.",
	})
)
