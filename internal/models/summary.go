package models

import "strconv"

// TacticStat holds how many rows matched a tactic and the share of all rows.
type TacticStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // rounded to one decimal
}

// PercentageLabel formats the percentage with exactly one decimal, e.g. "50.0".
func (s TacticStat) PercentageLabel() string {
	return strconv.FormatFloat(s.Percentage, 'f', 1, 64)
}

// Summary aggregates classification results over a dataset.
type Summary struct {
	Tactics        []string              `json:"tactics"` // order used to build PerTactic
	PerTactic      map[string]TacticStat `json:"per_tactic"`
	Total          int                   `json:"total"`
	AnyTacticCount int                   `json:"any_tactic_count"`
}

// Stat returns the stat for a tactic; unknown tactics yield a zero stat.
func (s *Summary) Stat(tactic string) TacticStat {
	return s.PerTactic[tactic]
}
