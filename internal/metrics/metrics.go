package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mateforge_http_requests_total",
			Help: "Total number of HTTP requests handled, by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mateforge_http_request_duration_seconds",
			Help:    "HTTP request latency, by route and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	stepFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mateforge_pipeline_step_failures_total",
			Help: "Remote pipeline steps that failed, by route and step name.",
		},
		[]string{"route", "step"},
	)
)

// ObserveRequest records one handled HTTP request.
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordStepFailure counts one failed step of a multi-call pipeline. The
// route identifies the pipeline, the step how far it got.
func RecordStepFailure(route, step string) {
	stepFailures.WithLabelValues(route, step).Inc()
}

// Handler serves the registered metrics in Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
