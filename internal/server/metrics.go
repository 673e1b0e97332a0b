package server

import (
	"github.com/btracey/rootfind/univariate"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records solve outcomes.
type Metrics struct {
	Solves     *prometheus.CounterVec
	Iterations *prometheus.HistogramVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates the solve metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rootfind_solves_total",
				Help: "Total number of solves by method and final status",
			},
			[]string{"method", "status"},
		),
		Iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rootfind_solve_iterations",
				Help:    "Iterations taken per solve",
				Buckets: prometheus.LinearBuckets(0, 5, 11),
			},
			[]string{"method"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rootfind_solve_duration_seconds",
				Help:    "Wall-clock duration of solves",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
			[]string{"method"},
		),
	}
	reg.MustRegister(m.Solves, m.Iterations, m.Duration)
	return m
}

// Observe records a finished solve.
func (m *Metrics) Observe(method univariate.Method, r *univariate.Result) {
	m.Solves.WithLabelValues(string(method), r.Status.String()).Inc()
	m.Iterations.WithLabelValues(string(method)).Observe(float64(r.Iterations))
	m.Duration.WithLabelValues(string(method)).Observe(r.Runtime.Seconds())
}
