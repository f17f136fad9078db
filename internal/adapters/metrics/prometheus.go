// Package metrics exports calculator activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/mlpot/internal/core/ports"
)

const namespace = "mlpot"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus implements ports.Metrics on a private registry.
type Prometheus struct {
	registry  *prometheus.Registry
	hits      prometheus.Counter
	misses    prometheus.Counter
	recompute prometheus.Histogram
	errors    *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Evaluations answered from the result cache",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Evaluations that ran the descriptor and model",
		}),
		recompute: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Time spent in one descriptor and model run, forces included",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calculator",
			Name:      "errors_total",
			Help:      "Failed evaluations by error kind",
		}, []string{"kind"}),
	}
}

// CacheHit counts an evaluation answered from the cache.
func (p *Prometheus) CacheHit() { p.hits.Inc() }

// CacheMiss counts an evaluation that ran the pipeline.
func (p *Prometheus) CacheMiss() { p.misses.Inc() }

// ObserveRecompute records the duration of one pipeline run.
func (p *Prometheus) ObserveRecompute(d time.Duration) { p.recompute.Observe(d.Seconds()) }

// RecordError counts a failed evaluation.
func (p *Prometheus) RecordError(kind string) { p.errors.WithLabelValues(kind).Inc() }

// Registry returns the registry holding the collectors.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
