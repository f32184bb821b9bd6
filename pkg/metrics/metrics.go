// Package metrics exposes Prometheus instruments for tenant routing.
//
// Routing decisions are counted by action and reason, which is how a
// redirect caused by a failing directory is told apart from a redirect for a
// genuinely unknown church. Directory lookups are timed by outcome.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "churchconnect"

// Recorder records routing metrics. A nil *Recorder is a valid no-op.
type Recorder struct {
	gatherer  prometheus.Gatherer
	decisions *prometheus.CounterVec
	lookups   *prometheus.HistogramVec
}

// New registers the routing instruments on a fresh registry that also
// carries the Go runtime and process collectors.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the instruments on reg and serves gatherer.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Recorder {
	r := &Recorder{
		gatherer: gatherer,
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tenant",
			Name:      "routing_decisions_total",
			Help:      "Tenant routing decisions by action and reason.",
		}, []string{"action", "reason"}),
		lookups: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tenant",
			Name:      "directory_lookup_seconds",
			Help:      "Latency of tenant directory lookups by outcome.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.decisions, r.lookups)
	return r
}

// ObserveDecision counts one routing decision.
func (r *Recorder) ObserveDecision(action, reason string) {
	if r == nil {
		return
	}
	r.decisions.WithLabelValues(action, reason).Inc()
}

// ObserveLookup records one directory lookup.
func (r *Recorder) ObserveLookup(d time.Duration, outcome string) {
	if r == nil {
		return
	}
	r.lookups.WithLabelValues(outcome).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
