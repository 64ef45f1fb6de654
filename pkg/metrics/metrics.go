// Package metrics instruments the planner façade with Prometheus
// counters/histograms, grounded on the counter/histogram vocabulary of
// NikeGunn-tutu's internal/infra/observability and
// flyingrobots-go-redis-work-queue's internal/obs. Unlike those packages
// this one never registers against the global default registerer and never
// starts an HTTP listener — exposing /metrics is a host concern and out of
// scope for the planning core (spec §1).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Planner holds every metric the planning façade emits.
type Planner struct {
	Calls           *prometheus.CounterVec
	CallDuration    *prometheus.HistogramVec
	BatchesEmitted  prometheus.Histogram
	StockoutDays    prometheus.Histogram
}

// NewPlanner registers the planner's metrics against reg and returns the
// handle used to record them. Pass prometheus.NewRegistry() for an isolated
// registry (recommended for tests) or prometheus.DefaultRegisterer for a
// process-wide /metrics endpoint maintained by the host.
func NewPlanner(reg prometheus.Registerer) *Planner {
	p := &Planner{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mrp",
			Subsystem: "planner",
			Name:      "calls_total",
			Help:      "Total number of Plan calls, partitioned by outcome.",
		}, []string{"outcome"}),
		CallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mrp",
			Subsystem: "planner",
			Name:      "call_duration_seconds",
			Help:      "Wall-clock duration of a single Plan call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
		BatchesEmitted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mrp",
			Subsystem: "planner",
			Name:      "batches_emitted",
			Help:      "Number of batches emitted per Plan call.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		}),
		StockoutDays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mrp",
			Subsystem: "planner",
			Name:      "stockout_days",
			Help:      "Number of stockout days found per Plan call.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 20, 40},
		}),
	}
	reg.MustRegister(p.Calls, p.CallDuration, p.BatchesEmitted, p.StockoutDays)
	return p
}

// NewNop builds a Planner registered against a fresh, private registry, for
// callers (and tests) that don't want to wire up Prometheus at all.
func NewNop() *Planner {
	return NewPlanner(prometheus.NewRegistry())
}
