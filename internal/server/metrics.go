package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	promptsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptgen_prompts_generated_total",
			Help: "Total number of prompts generated, by request kind.",
		},
		[]string{"kind"},
	)

	promptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptgen_prompt_tokens",
			Help:    "Estimated token count of generated prompts, by request kind.",
			Buckets: []float64{50, 100, 200, 400, 800, 1600, 3200},
		},
		[]string{"kind"},
	)

	requestsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptgen_requests_failed_total",
			Help: "Total number of API requests answered with an error, by status code.",
		},
		[]string{"status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptgen_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
