package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"tactics/internal/models"
)

// Recorder holds the classification counters.
type Recorder struct {
	runs          *prometheus.CounterVec
	rowsTotal     prometheus.Counter
	tacticMatches *prometheus.CounterVec
	anyTactic     prometheus.Counter
	exports       *prometheus.CounterVec
	datasetRows   prometheus.Histogram
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// NewRecorder creates the counters and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tactics_classification_runs_total",
			Help: "Total classification runs by source",
		}, []string{"source"}),
		rowsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tactics_rows_classified_total",
			Help: "Total rows classified",
		}),
		tacticMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tactics_tactic_rows_total",
			Help: "Total classified rows with the tactic present",
		}, []string{"tactic"}),
		anyTactic: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tactics_any_tactic_rows_total",
			Help: "Total classified rows with at least one tactic present",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tactics_exports_total",
			Help: "Total exports by format",
		}, []string{"format"}),
		datasetRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tactics_dataset_rows",
			Help:    "Rows per uploaded dataset",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	reg.MustRegister(r.runs, r.rowsTotal, r.tacticMatches, r.anyTactic, r.exports, r.datasetRows)
	return r
}

// Init registers the recorder with the default registry.
// Must be called once at startup; later calls are no-ops.
func Init() {
	recorderOnce.Do(func() {
		recorder = NewRecorder(prometheus.DefaultRegisterer)
	})
}

// RecordRun counts a classification run and its summary.
func (r *Recorder) RecordRun(source string, summary *models.Summary) {
	r.runs.WithLabelValues(source).Inc()
	if summary == nil {
		return
	}
	r.rowsTotal.Add(float64(summary.Total))
	r.anyTactic.Add(float64(summary.AnyTacticCount))
	for _, tactic := range summary.Tactics {
		r.tacticMatches.WithLabelValues(tactic).Add(float64(summary.Stat(tactic).Count))
	}
}

// RecordExport counts an export in the given format.
func (r *Recorder) RecordExport(format string) {
	r.exports.WithLabelValues(format).Inc()
}

// RecordDataset observes the size of an uploaded dataset.
func (r *Recorder) RecordDataset(rows int) {
	r.datasetRows.Observe(float64(rows))
}

// RecordRun records a run on the global recorder if Init was called.
func RecordRun(source string, summary *models.Summary) {
	if recorder == nil {
		return
	}
	recorder.RecordRun(source, summary)
}

// RecordExport records an export on the global recorder if Init was called.
func RecordExport(format string) {
	if recorder == nil {
		return
	}
	recorder.RecordExport(format)
}

// RecordDataset records a dataset upload on the global recorder if Init was called.
func RecordDataset(rows int) {
	if recorder == nil {
		return
	}
	recorder.RecordDataset(rows)
}
