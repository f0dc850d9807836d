package models

import "strconv"

// MatchResult is the outcome of matching one tactic's keywords against a text.
type MatchResult struct {
	Present bool     `json:"present"`
	Count   int      `json:"count"`
	Matches []string `json:"matches"`
}

// Classification maps tactic names to match results. A tactic with no entry
// is treated as not present.
type Classification map[string]MatchResult

// Result returns the match result for a tactic and whether one was recorded.
func (c Classification) Result(tactic string) (MatchResult, bool) {
	r, ok := c[tactic]
	return r, ok
}

// Present reports whether the tactic was matched. Missing entries are not present.
func (c Classification) Present(tactic string) bool {
	return c[tactic].Present
}

// AnyPresent reports whether at least one of the given tactics was matched.
func (c Classification) AnyPresent(tactics []string) bool {
	for _, t := range tactics {
		if c.Present(t) {
			return true
		}
	}
	return false
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
