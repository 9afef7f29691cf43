package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	Messages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commit_assistant_messages_total",
			Help: "Total generated commit messages",
		},
		[]string{"shape"},
	)

	ExtractionErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commit_assistant_extraction_errors_total",
			Help: "Total singular path extraction failures",
		},
		[]string{"kind"},
	)

	AICalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commit_assistant_ai_calls_total",
			Help: "Total AI chat calls",
		},
		[]string{"provider"},
	)

	AIErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commit_assistant_ai_errors_total",
			Help: "Total AI chat errors",
		},
		[]string{"provider"},
	)

	AILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "commit_assistant_ai_latency_seconds",
			Help:    "AI chat latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	AITokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commit_assistant_ai_tokens_total",
			Help: "Total AI tokens",
		},
		[]string{"provider", "model", "type"},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commit_assistant_cache_lookups_total",
			Help: "Reply cache lookups",
		},
		[]string{"result"},
	)

	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "commit_assistant_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func InitMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(
			Messages,
			ExtractionErrors,
			AICalls,
			AIErrors,
			AILatency,
			AITokens,
			CacheLookups,
			RateLimited,
		)
	})
}
