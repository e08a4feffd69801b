// SPDX-License-Identifier: MIT

// Package metrics exposes sampler and engine counters to Prometheus.
// A nil *Registry is valid and records nothing.
package metrics

import (
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sample outcomes.
const (
	OutcomeFeasible   = "feasible"
	OutcomeInfeasible = "infeasible"
	OutcomeError      = "error"
)

// Registry holds the mixrate collectors on a private Prometheus registry.
type Registry struct {
	SamplesTotal    *prometheus.CounterVec
	MixingRate      *prometheus.HistogramVec
	ProduceDuration *prometheus.HistogramVec
	EngineRequests  *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates and registers all collectors.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.SamplesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixrate_samples_total",
			Help: "Transition matrices produced, by producer and outcome",
		},
		[]string{"producer", "outcome"},
	)

	r.MixingRate = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mixrate_mixing_rate",
			Help:    "Mixing rate of feasible transition matrices",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
		[]string{"producer"},
	)

	r.ProduceDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mixrate_produce_duration_seconds",
			Help:    "Time spent producing one transition matrix",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		},
		[]string{"producer"},
	)

	r.EngineRequests = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixrate_engine_requests_total",
			Help: "Global-opt requests served, by HTTP status",
		},
		[]string{"status"},
	)

	return r
}

// RecordSample records one producer run. rate is only observed when finite.
func (r *Registry) RecordSample(producer, outcome string, rate float64, d time.Duration) {
	if r == nil {
		return
	}
	r.SamplesTotal.WithLabelValues(producer, outcome).Inc()
	r.ProduceDuration.WithLabelValues(producer).Observe(d.Seconds())
	if outcome == OutcomeFeasible && !math.IsInf(rate, 0) && !math.IsNaN(rate) {
		r.MixingRate.WithLabelValues(producer).Observe(rate)
	}
}

// ObserveEngineRequest counts one engine response (engine.RequestObserver).
func (r *Registry) ObserveEngineRequest(status string) {
	if r == nil {
		return
	}
	r.EngineRequests.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer returns the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
