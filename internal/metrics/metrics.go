package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// OutcomeSuccess is the outcome label of a confirmed transfer; failed
// transfers use their error kind as the outcome.
const OutcomeSuccess = "success"

// Service owns the process metrics registry.
type Service struct {
	registry         *prometheus.Registry
	transfersTotal   *prometheus.CounterVec
	transferDuration *prometheus.HistogramVec
}

// New creates the metrics service with all collectors registered.
func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	transfersTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Name:      "transfers_total",
		Help:      "Transfer requests processed, by network and outcome.",
	}, []string{"network", "outcome"})

	transferDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "faucet",
		Name:      "transfer_duration_seconds",
		Help:      "End-to-end transfer pipeline duration, by outcome.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"outcome"})

	registry.MustRegister(transfersTotal, transferDuration)

	return &Service{
		registry:         registry,
		transfersTotal:   transfersTotal,
		transferDuration: transferDuration,
	}
}

// Registry exposes the underlying registry for HTTP handlers and middleware.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// ObserveTransfer records one processed transfer request.
func (s *Service) ObserveTransfer(network string, outcome string, duration time.Duration) {
	s.transfersTotal.WithLabelValues(network, outcome).Inc()
	s.transferDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}
