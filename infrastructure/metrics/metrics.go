// ABOUTME: Prometheus collectors for HTTP traffic and upstream fetches
// ABOUTME: Recorder adapts the upstream collectors to the core Metrics interface

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const serviceName = "portfolio-api"

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Upstream adapters
	UpstreamFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_upstream_fetch_total",
			Help: "Total number of upstream fetches by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	UpstreamFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_upstream_fetch_duration_seconds",
			Help:    "Upstream fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Init sets the application_info gauge
func Init(version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}

// ObserveRequest records one served HTTP request
func ObserveRequest(method, path string, status int, duration time.Duration) {
	HttpRequestsTotal.WithLabelValues(method, path, statusLabel(status), serviceName).Inc()
	HttpRequestDuration.WithLabelValues(method, path, serviceName).Observe(duration.Seconds())
}

// Recorder implements interfaces.Metrics on the upstream collectors
type Recorder struct{}

// NewRecorder returns a Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveFetch records one upstream call
func (Recorder) ObserveFetch(source, status string, duration time.Duration) {
	UpstreamFetchTotal.WithLabelValues(source, status).Inc()
	UpstreamFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
}

func statusLabel(status int) string {
	if status == 0 {
		status = 200
	}
	return strconv.Itoa(status)
}
