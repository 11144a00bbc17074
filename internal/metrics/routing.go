package metrics

import "github.com/prometheus/client_golang/prometheus"

// Routing and provider Prometheus metrics.
var (
	RoutingDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "way",
			Name:      "routing_decisions_total",
			Help:      "Total routing decisions by kind",
		},
		[]string{"decision"}, // "answer" / "general" / "platform" / "none"
	)

	ClassifierRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "way",
			Name:      "classifier_requests_total",
			Help:      "Total number of classifier requests",
		},
		[]string{"model", "status"},
	)

	ClassifierRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "way",
			Name:      "classifier_request_duration_seconds",
			Help:      "Classifier request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "way",
			Name:      "provider_requests_total",
			Help:      "Total number of video provider requests",
		},
		[]string{"provider", "status"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "way",
			Name:      "provider_request_duration_seconds",
			Help:      "Video provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)
)

var routingMetricsRegistered bool

// RegisterRoutingMetrics registers routing metrics. Must be called once from main.
func RegisterRoutingMetrics() {
	if routingMetricsRegistered {
		return
	}
	prometheus.MustRegister(RoutingDecisionsTotal)
	prometheus.MustRegister(ClassifierRequestsTotal)
	prometheus.MustRegister(ClassifierRequestDuration)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderRequestDuration)
	routingMetricsRegistered = true
}
