package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Chat metrics
	ChatQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_queries_total",
		Help: "Queries processed, by the intent that answered and the outcome",
	}, []string{"intent", "outcome"})

	ChatLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chatbot_query_latency_seconds",
		Help:    "End-to-end latency of a single query",
		Buckets: prometheus.DefBuckets,
	})

	ActiveChatSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chatbot_active_chat_sessions",
		Help: "Open WebSocket chat sessions",
	})

	// Provider metrics
	ProviderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_provider_requests_total",
		Help: "Outbound provider requests by provider and result",
	}, []string{"provider", "status"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatbot_provider_latency_seconds",
		Help:    "Outbound provider request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	ProviderBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "chatbot_provider_breaker_state",
		Help: "Circuit breaker state per provider (0 closed, 1 half-open, 2 open)",
	}, []string{"provider"})

	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_cache_lookups_total",
		Help: "Provider response cache lookups by result",
	}, []string{"operation", "result"})
)
