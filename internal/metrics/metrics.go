// Package metrics records per-run analysis counters on a private prometheus
// registry and can dump them in the node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"genescan/internal/engine"
)

const namespace = "genescan"

// Recorder implements pipeline.Observer.
type Recorder struct {
	reg       *prometheus.Registry
	patients  *prometheus.CounterVec
	risk      *prometheus.CounterVec
	mutations prometheus.Counter
	duration  prometheus.Histogram
}

func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		patients: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patients_total",
			Help:      "Patients processed, by result status.",
		}, []string{"status"}),
		risk: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_assessments_total",
			Help:      "Analyzed patients, by assessed risk level.",
		}, []string{"level"}),
		mutations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Point mutations found across all patients.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time spent analyzing one patient.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	r.reg.MustRegister(r.patients, r.risk, r.mutations, r.duration)
	return r
}

// Registry exposes the underlying registry (tests, custom exporters).
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveAnalysis records one finished patient.
func (r *Recorder) ObserveAnalysis(res engine.Result, elapsed time.Duration) {
	r.patients.WithLabelValues(string(res.Status)).Inc()
	r.duration.Observe(elapsed.Seconds())
	if res.Status != engine.StatusOK {
		return
	}
	r.risk.WithLabelValues(string(res.Assessment.Level)).Inc()
	r.mutations.Add(float64(res.Mutation.Total))
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
