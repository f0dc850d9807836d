package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"tactics/internal/models"
)

func TestRecorder_RecordRun(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.RecordRun("web", &models.Summary{
		Tactics: []string{"urgency_marketing", "exclusive_marketing"},
		PerTactic: map[string]models.TacticStat{
			"urgency_marketing":   {Count: 1, Percentage: 50},
			"exclusive_marketing": {Count: 0, Percentage: 0},
		},
		Total:          2,
		AnyTacticCount: 1,
	})
	r.RecordRun("api", nil)

	if got := testutil.ToFloat64(r.runs.WithLabelValues("web")); got != 1 {
		t.Errorf("web runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.runs.WithLabelValues("api")); got != 1 {
		t.Errorf("api runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.rowsTotal); got != 2 {
		t.Errorf("rows = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.anyTactic); got != 1 {
		t.Errorf("any tactic rows = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.tacticMatches.WithLabelValues("urgency_marketing")); got != 1 {
		t.Errorf("urgency rows = %v, want 1", got)
	}
}

func TestRecorder_RecordExport(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())
	r.RecordExport("csv")
	r.RecordExport("csv")
	r.RecordExport("yaml")

	if got := testutil.ToFloat64(r.exports.WithLabelValues("csv")); got != 2 {
		t.Errorf("csv exports = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.exports.WithLabelValues("yaml")); got != 1 {
		t.Errorf("yaml exports = %v, want 1", got)
	}
}

func TestGlobalRecorder_NoopBeforeInit(t *testing.T) {
	// Must not panic when Init has not been called in this process.
	if recorder == nil {
		RecordRun("web", nil)
		RecordExport("csv")
		RecordDataset(3)
	}
}
