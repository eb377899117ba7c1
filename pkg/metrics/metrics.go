// Package metrics exposes validation counters and latencies to Prometheus.
//
// A Collector is both a validator.Observer and a diag.Sink:
//
//	m := metrics.New("formguard")
//	v := validator.New(provider,
//	    validator.WithObserver(m),
//	    validator.WithSink(diag.Multi(diag.NewLogSink(log), m)),
//	)
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/formguard/pkg/constraint"
	"github.com/dmitrymomot/formguard/pkg/diag"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "formguard"

const unknownType = "unknown"

// Collector holds the Prometheus metrics of a validator.
type Collector struct {
	ValidationsTotal   *prometheus.CounterVec
	ViolationsTotal    *prometheus.CounterVec
	InvalidTotal       *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
	DiagnosticsTotal   *prometheus.CounterVec
}

// New creates a collector registered with the default Prometheus registry.
func New(namespace string) *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer, namespace)
}

// NewWithRegistry creates a collector registered with reg. An empty
// namespace uses DefaultNamespace.
func NewWithRegistry(reg prometheus.Registerer, namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &Collector{
		ValidationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of validated roots",
			},
			[]string{"type"},
		),
		ViolationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "violations_total",
				Help:      "Total number of constraint violations found",
			},
			[]string{"type"},
		),
		InvalidTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invalid_total",
				Help:      "Total number of validated roots with at least one violation",
			},
			[]string{"type"},
		),
		ValidationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validation_duration_seconds",
				Help:      "Time spent walking a root in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"type"},
		),
		DiagnosticsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "diagnostics_total",
				Help:      "Total number of configuration diagnostics by constraint kind",
			},
			[]string{"constraint"},
		),
	}
}

// ObserveValidation implements validator.Observer.
func (c *Collector) ObserveValidation(_ context.Context, typeName string, violations int, elapsed time.Duration) {
	if typeName == "" {
		typeName = unknownType
	}
	c.ValidationsTotal.WithLabelValues(typeName).Inc()
	c.ViolationsTotal.WithLabelValues(typeName).Add(float64(violations))
	if violations > 0 {
		c.InvalidTotal.WithLabelValues(typeName).Inc()
	}
	c.ValidationDuration.WithLabelValues(typeName).Observe(elapsed.Seconds())
}

// Report implements diag.Sink. Structural diagnostics such as cycles are
// counted under "structure".
func (c *Collector) Report(_ context.Context, d diag.Diagnostic) {
	label := "structure"
	if d.Kind != constraint.KindUnknown {
		label = d.Kind.TagName()
	}
	c.DiagnosticsTotal.WithLabelValues(label).Inc()
}
