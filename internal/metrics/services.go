package metrics

import "github.com/prometheus/client_golang/prometheus"

// Upstream service Prometheus metrics (search backend, workspace service,
// user-profile service).
var (
	ServiceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "service_requests_total",
			Help:      "Total number of upstream service requests",
		},
		[]string{"service", "method", "status"},
	)

	ServiceRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchapi",
			Name:      "service_request_duration_seconds",
			Help:      "Upstream service request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method"},
	)

	ServiceErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "service_errors_total",
			Help:      "Total upstream service errors",
		},
		[]string{"service", "method", "error_type"},
	)
)

var serviceMetricsRegistered bool

// RegisterServiceMetrics registers Prometheus upstream service metrics.
// Must be called once from main.
func RegisterServiceMetrics() {
	if serviceMetricsRegistered {
		return
	}
	prometheus.MustRegister(ServiceRequestsTotal)
	prometheus.MustRegister(ServiceRequestDuration)
	prometheus.MustRegister(ServiceErrorsTotal)
	serviceMetricsRegistered = true
}
