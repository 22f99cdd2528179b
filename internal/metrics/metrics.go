package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics recorded by the HTTPMetrics middleware.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "handsigned_http_requests_total",
		Help: "HTTP requests by method, route pattern, and status code",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "handsigned_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Scoring metrics.
var (
	// ScoreRequestsTotal counts completed scorings by the provider that
	// actually produced the result ("demo" when the fallback path ran).
	ScoreRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "handsigned_score_requests_total",
		Help: "Completed score requests by serving provider",
	}, []string{"provider"})

	// ProviderErrorsTotal counts adapter failures by provider and stage
	// (network, read, api, parse, empty, score, image_fetch).
	ProviderErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "handsigned_provider_errors_total",
		Help: "Provider adapter failures by provider and stage",
	}, []string{"provider", "stage"})

	ProviderFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "handsigned_provider_fallbacks_total",
		Help: "Requests that fell back to the offline scorer after a provider failure",
	}, []string{"provider"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "handsigned_provider_latency_seconds",
		Help:    "Outbound provider call latency",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 15, 20},
	}, []string{"provider"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "handsigned_rate_limited_total",
		Help: "Requests rejected by the fixed-window rate limiter",
	})
)
