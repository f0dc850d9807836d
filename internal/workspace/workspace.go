// Package workspace holds the state of one classification session: the
// loaded dataset, the editable dictionaries and the last classification run.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tactics/internal/classifier"
	"tactics/internal/dataset"
	"tactics/internal/dictionary"
	"tactics/internal/export"
	"tactics/internal/models"
)

// Domain-level workspace error sentinels.
var (
	ErrNoDataset     = errors.New("no dataset loaded")
	ErrNotClassified = errors.New("dataset has not been classified")
	ErrInvalidMode   = errors.New("invalid dictionary mode")
)

// SessionKey is the session key an encoded workspace is stored under.
const SessionKey = "workspace"

// Mode selects which dictionaries summaries and exports are computed against.
type Mode string

const (
	// ModeLive reads the current dictionaries, even if they changed after the
	// last run. Tactics added since then count as not present.
	ModeLive Mode = "live"
	// ModeSnapshot reads the dictionaries captured when the run was made.
	ModeSnapshot Mode = "snapshot"
)

// ParseMode validates a mode name. Empty means ModeLive.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeLive:
		return ModeLive, nil
	case ModeSnapshot:
		return ModeSnapshot, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Run records one classification pass.
type Run struct {
	ID           uuid.UUID         `json:"id"`
	ClassifiedAt time.Time         `json:"classified_at"`
	TextColumn   string            `json:"text_column"`
	Dictionaries *dictionary.Store `json:"dictionaries"`
}

// Workspace is the session-owned state. It is not safe for concurrent use;
// callers load it, apply one operation and save it.
type Workspace struct {
	Dictionaries *dictionary.Store         `json:"dictionaries"`
	Records      []models.Record           `json:"records"`
	Results      []models.ClassifiedRecord `json:"results,omitempty"`
	Run          *Run                      `json:"run,omitempty"`

	now func() time.Time
}

// New returns a workspace seeded with dict, or the default dictionaries when
// dict is nil.
func New(dict *dictionary.Store) *Workspace {
	if dict == nil {
		dict = dictionary.Default()
	}
	return &Workspace{
		Dictionaries: dict.Clone(),
		Records:      []models.Record{},
		now:          time.Now,
	}
}

// LoadDataset replaces the records with the parsed text and discards any
// previous results.
func (w *Workspace) LoadDataset(text string) int {
	w.Records = dataset.Parse(text)
	w.Results = nil
	w.Run = nil
	return len(w.Records)
}

// HasDataset reports whether any records are loaded.
func (w *Workspace) HasDataset() bool {
	return len(w.Records) > 0
}

// Classified reports whether a run has been made on the current dataset.
func (w *Workspace) Classified() bool {
	return w.Run != nil
}

// Classify classifies the loaded records against the current dictionaries and
// stamps the run with a snapshot of them.
func (w *Workspace) Classify() (*Run, error) {
	if !w.HasDataset() {
		return nil, ErrNoDataset
	}

	results, column := classifier.ClassifyRecords(w.Records, w.Dictionaries)
	w.Results = results
	w.Run = &Run{
		ID:           uuid.New(),
		ClassifiedAt: w.clock().UTC(),
		TextColumn:   column,
		Dictionaries: w.Dictionaries.Clone(),
	}
	return w.Run, nil
}

// DictionariesFor returns the dictionaries summaries and exports use in mode.
func (w *Workspace) DictionariesFor(mode Mode) *dictionary.Store {
	if mode == ModeSnapshot && w.Run != nil && w.Run.Dictionaries != nil {
		return w.Run.Dictionaries
	}
	return w.Dictionaries
}

// Summary aggregates the last run.
func (w *Workspace) Summary(mode Mode) (*models.Summary, error) {
	if !w.Classified() {
		return nil, ErrNotClassified
	}
	return classifier.Summarize(w.Results, w.DictionariesFor(mode)), nil
}

// Export renders the last run as CSV.
func (w *Workspace) Export(mode Mode) (string, error) {
	if !w.Classified() {
		return "", ErrNotClassified
	}
	return export.ToCSV(w.Results, w.DictionariesFor(mode)), nil
}

// ResetDictionaries restores the dictionaries to seed.
func (w *Workspace) ResetDictionaries(seed *dictionary.Store) {
	if seed == nil {
		seed = dictionary.Default()
	}
	w.Dictionaries = seed.Clone()
}

// ReplaceDictionaries swaps in an imported dictionary store.
func (w *Workspace) ReplaceDictionaries(dict *dictionary.Store) {
	if dict == nil {
		dict = dictionary.New()
	}
	w.Dictionaries = dict
}

// Encode serializes the workspace for session storage.
func (w *Workspace) Encode() (string, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("failed to encode workspace: %w", err)
	}
	return string(data), nil
}

// Decode restores a workspace produced by Encode.
func Decode(data string) (*Workspace, error) {
	w := &Workspace{now: time.Now}
	if err := json.Unmarshal([]byte(data), w); err != nil {
		return nil, fmt.Errorf("failed to decode workspace: %w", err)
	}
	if w.Dictionaries == nil {
		w.Dictionaries = dictionary.New()
	}
	if w.Records == nil {
		w.Records = []models.Record{}
	}
	return w, nil
}

func (w *Workspace) clock() time.Time {
	if w.now == nil {
		return time.Now()
	}
	return w.now()
}
