// Package metrics provides Prometheus metrics for the Wikimedia MCP server.
// It tracks tool call counts, latencies, and upstream API performance.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wikimedia_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// WikimediaAPILatency measures upstream API call latency by API family
	// (core, rest, action, feed) and operation
	WikimediaAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "wikimedia_api_latency_seconds",
		Help:      "Wikimedia API call latency by API family and operation",
		Buckets:   prometheus.DefBuckets,
	}, []string{"api", "operation"})

	// WikimediaAPIRequestsTotal counts upstream API requests
	WikimediaAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "wikimedia_api_requests_total",
		Help:      "Total Wikimedia API requests by API family, operation and status",
	}, []string{"api", "operation", "status"})

	// WikimediaAPIErrors counts upstream API errors by error code
	WikimediaAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "wikimedia_api_errors_total",
		Help:      "Wikimedia API errors by API family, operation and error code",
	}, []string{"api", "operation", "error_code"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a Wikimedia API call
func RecordAPICall(api, operation string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	WikimediaAPIRequestsTotal.WithLabelValues(api, operation, status).Inc()
	WikimediaAPILatency.WithLabelValues(api, operation).Observe(duration)
	if errorCode != "" {
		WikimediaAPIErrors.WithLabelValues(api, operation, errorCode).Inc()
	}
}
