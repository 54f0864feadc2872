package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal counts mortgage calculations by outcome
	// (ok, invalid, cached).
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mortgage_simulator",
		Name:      "calculations_total",
		Help:      "Number of mortgage payment calculations performed.",
	}, []string{"outcome"})

	// ScenariosTotal counts buy-vs-invest simulations by outcome.
	ScenariosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mortgage_simulator",
		Name:      "scenarios_total",
		Help:      "Number of scenario simulations performed.",
	}, []string{"outcome"})

	// RequestDuration observes HTTP request latency per route and status.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mortgage_simulator",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "status"})
)
