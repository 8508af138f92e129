// Package metrics exports Prometheus metrics for route-change transitions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

// DurationBuckets covers overlays from a quick fade to a slow staggered
// set, in seconds.
var DurationBuckets = []float64{0.1, 0.25, 0.5, 0.75, 1, 1.5, 2, 5}

// Collector records transition starts, completions and durations.
// It satisfies curtain.Observer and curtain.AbandonObserver. Every started
// transition is eventually counted as completed or abandoned.
type Collector struct {
	Started   *prometheus.CounterVec
	Completed *prometheus.CounterVec
	Abandoned *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
	Active    prometheus.Gauge
}

// NewCollector creates the transition metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curtain_transitions_started_total",
				Help: "Transitions started",
			},
			[]string{"variant"},
		),
		Completed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curtain_transitions_completed_total",
				Help: "Transitions completed",
			},
			[]string{"variant"},
		),
		Abandoned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curtain_transitions_abandoned_total",
				Help: "Transitions dropped before they completed",
			},
			[]string{"variant"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "curtain_transition_duration_seconds",
				Help:    "Time an overlay stayed on screen",
				Buckets: DurationBuckets,
			},
			[]string{"variant"},
		),
		Active: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "curtain_transition_active",
				Help: "1 while an overlay is on screen",
			},
		),
	}

	if reg != nil {
		for _, m := range []prometheus.Collector{c.Started, c.Completed, c.Abandoned, c.Duration, c.Active} {
			if err := reg.Register(m); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// TransitionStarted implements curtain.Observer.
func (c *Collector) TransitionStarted(variant transition.Variant, _ transition.Route) {
	c.Started.WithLabelValues(string(variant)).Inc()
	c.Active.Set(1)
}

// TransitionCompleted implements curtain.Observer.
func (c *Collector) TransitionCompleted(variant transition.Variant, elapsed time.Duration) {
	c.Completed.WithLabelValues(string(variant)).Inc()
	c.Duration.WithLabelValues(string(variant)).Observe(elapsed.Seconds())
	c.Active.Set(0)
}

// TransitionAbandoned implements curtain.AbandonObserver.
func (c *Collector) TransitionAbandoned(variant transition.Variant, _ time.Duration) {
	c.Abandoned.WithLabelValues(string(variant)).Inc()
	c.Active.Set(0)
}
