// Package metrics defines the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts orchestrator runs by execution mode and outcome.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_requests_total",
		Help: "Chat requests processed, by mode and outcome.",
	}, []string{"mode", "outcome"})

	// AgentWins counts which agent produced the persisted answer.
	AgentWins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_agent_wins_total",
		Help: "Answers persisted, by the agent that produced them.",
	}, []string{"agent"})

	// ParseFallbacks counts structured-output parse failures that degraded to
	// a fixed fallback value.
	ParseFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_parse_fallbacks_total",
		Help: "Model JSON outputs that could not be parsed, by component.",
	}, []string{"component"})

	// RequestDuration observes end-to-end orchestrator latency per mode.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistant_request_duration_seconds",
		Help:    "Orchestrator run duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})
)
