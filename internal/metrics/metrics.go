// Package metrics records per-run Prometheus metrics. The programs are
// short-lived, so instead of serving /metrics the registry is written once
// in the text exposition format, ready for the node_exporter textfile
// collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "chapter3"

// Run outcomes used as the "outcome" label value.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidSelector = "invalid_selector"
	OutcomeInputError      = "input_error"
	OutcomeOverflow        = "overflow"
	OutcomeReadError       = "read_error"
	OutcomeCanceled        = "canceled"
	OutcomeError           = "error"
)

// Recorder owns a private registry so tests and runs never share state.
type Recorder struct {
	registry   *prometheus.Registry
	runs       *prometheus.CounterVec
	duration   prometheus.Histogram
	iterations prometheus.Counter
	retries    prometheus.Counter
}

// NewRecorder creates a recorder whose metrics carry the program label.
func NewRecorder(program string) *Recorder {
	labels := prometheus.Labels{"program": program}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   Namespace,
			Name:        "runs_total",
			Help:        "Completed runs by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   Namespace,
			Name:        "compute_duration_seconds",
			Help:        "Time spent computing the result, excluding input waits.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Name:        "sequence_iterations_total",
			Help:        "Accumulator window advances performed.",
			ConstLabels: labels,
		}),
		retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Name:        "input_retries_total",
			Help:        "Answers rejected and asked again.",
			ConstLabels: labels,
		}),
	}
	r.registry.MustRegister(r.runs, r.duration, r.iterations, r.retries)
	return r
}

// ObserveRun counts one finished run.
func (r *Recorder) ObserveRun(outcome string) {
	r.runs.WithLabelValues(outcome).Inc()
}

// ObserveCompute records how long the computation took.
func (r *Recorder) ObserveCompute(d time.Duration) {
	r.duration.Observe(d.Seconds())
}

// ObserveIterations adds window advances.
func (r *Recorder) ObserveIterations(n uint64) {
	r.iterations.Add(float64(n))
}

// ObserveRetry counts a rejected answer.
func (r *Recorder) ObserveRetry() {
	r.retries.Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
