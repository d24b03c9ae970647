package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess    = "success"
	OutcomeBadRequest = "bad_request"
	OutcomeNoRates    = "no_rates"
	OutcomeUpstream   = "upstream_error"
	OutcomeError      = "error"
)

var registry = prometheus.NewRegistry()

var (
	costBuckets = []float64{5, 10, 15, 20, 25, 30, 40, 50, 75, 100, 150, 250}

	ShippingEstimatesTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "swappo_shipping_estimates_total",
			Help: "Shipping estimates computed, by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	ShippingEstimateCost = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swappo_shipping_estimate_cost",
			Help:    "Estimated shipping cost of successful estimates",
			Buckets: costBuckets,
		},
		[]string{"strategy", "currency"},
	)

	HTTPRequestsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "swappo_http_requests_total",
			Help: "HTTP requests served, by method and status code",
		},
		[]string{"method", "status"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func ObserveEstimate(strategy, outcome string) {
	ShippingEstimatesTotal.WithLabelValues(strategy, outcome).Inc()
}

func ObserveCost(strategy, currency string, cost float64) {
	ShippingEstimateCost.WithLabelValues(strategy, currency).Observe(cost)
}

// Handler serves the toolkit registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// Registry is exposed for tests.
func Registry() *prometheus.Registry {
	return registry
}
