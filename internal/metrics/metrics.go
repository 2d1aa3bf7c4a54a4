package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gyeh/carebalance/internal/model"
)

// Collector provides evaluation metrics.
type Collector struct {
	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec
	AlertsTotal        *prometheus.CounterVec
	MissingWeightTotal prometheus.Counter
	PanicsTotal        *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	c := &Collector{
		EvaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Number of balance evaluations by source",
			},
			[]string{"source"},
		),
		EvaluationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Time to evaluate a snapshot and compose its report",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"source"},
		),
		AlertsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_total",
				Help:      "Number of advisories raised by code",
			},
			[]string{"code"},
		),
		MissingWeightTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "missing_weight_total",
				Help:      "Evaluations without a valid weight (no perspiration estimate)",
			},
		),
		PanicsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_panics_total",
				Help:      "Handler panics recovered by route",
			},
			[]string{"route"},
		),
	}
	reg.MustRegister(c.EvaluationsTotal, c.EvaluationDuration, c.AlertsTotal, c.MissingWeightTotal, c.PanicsTotal)
	return c
}

// RecordEvaluation records one evaluation of r from source.
func (c *Collector) RecordEvaluation(source string, r *model.Result, d time.Duration) {
	c.EvaluationsTotal.WithLabelValues(source).Inc()
	c.EvaluationDuration.WithLabelValues(source).Observe(d.Seconds())
	for _, a := range r.Alerts {
		c.AlertsTotal.WithLabelValues(string(a.Code)).Inc()
	}
	if r.Perspiration24h == nil {
		c.MissingWeightTotal.Inc()
	}
}
