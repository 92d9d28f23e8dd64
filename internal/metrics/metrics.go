package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BuildRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "build_requests_total",
			Help: "Total number of build generation requests by outcome",
		},
		[]string{"outcome"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gemini_requests_total",
			Help: "Total number of calls to the Gemini API by response status",
		},
		[]string{"status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gemini_request_duration_seconds",
			Help:    "Duration of calls to the Gemini API in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		},
		[]string{"status"},
	)
)

// ObserveBuild counts one handled build request
func ObserveBuild(outcome string) {
	BuildRequests.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records one Gemini call. status is the HTTP status code,
// or "error" when no response was received.
func ObserveUpstream(status string, elapsed time.Duration) {
	UpstreamRequests.WithLabelValues(status).Inc()
	UpstreamDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}
