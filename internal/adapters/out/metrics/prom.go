package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fleetdispatch/internal/core/ports"
)

// PromSink records reconciliation runs in Prometheus metrics.
type PromSink struct {
	runs    *prometheus.CounterVec
	latency prometheus.Histogram
	routes  prometheus.Gauge
}

var _ ports.DispatchMetrics = (*PromSink)(nil)

// NewPromSink registers the dispatch collectors on reg, or on the default
// registerer when reg is nil. Collectors that are already registered are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_reconciliations_total",
		Help: "Total number of reconciliation runs by outcome",
	}, []string{"outcome"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_solver_latency_seconds",
		Help:    "Duration of calls to the route solver",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})
	routes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dispatch_routes_planned",
		Help: "Number of routes created by the last reconciliation run",
	})

	var err error
	if runs, err = register(reg, runs); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	if routes, err = register(reg, routes); err != nil {
		return nil, err
	}

	return &PromSink{runs: runs, latency: latency, routes: routes}, nil
}

func (s *PromSink) ObserveSolverLatency(d time.Duration) {
	s.latency.Observe(d.Seconds())
}

// RecordRun counts the run. The routes gauge only moves on runs that rewrote state.
func (s *PromSink) RecordRun(outcome ports.ReconcileOutcome, routes int) {
	s.runs.WithLabelValues(string(outcome)).Inc()
	if outcome == ports.OutcomePlanned {
		s.routes.Set(float64(routes))
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
