// Package dictionary holds the tactic keyword dictionaries used for classification.
package dictionary

import (
	"encoding/json"
	"strings"
)

// Tactic is one named keyword list.
type Tactic struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Store maps tactic names to ordered keyword lists. Tactics iterate in the
// order they were added. The zero value is an empty, usable store.
//
// All mutators are total: invalid input is ignored rather than reported.
type Store struct {
	order    []string
	keywords map[string][]string
}

// New returns an empty store.
func New() *Store {
	return &Store{keywords: make(map[string][]string)}
}

// FromTactics builds a store by replaying AddTactic and AddKeyword for each
// entry, so the same trimming and dedup-by-name rules apply as for user edits.
func FromTactics(tactics []Tactic) *Store {
	s := New()
	for _, t := range tactics {
		s.AddTactic(t.Name)
		for _, k := range t.Keywords {
			s.AddKeyword(t.Name, k)
		}
	}
	return s
}

// AddTactic inserts an empty keyword list for name. It does nothing when the
// name is empty or already present; existing keywords are never reset.
func (s *Store) AddTactic(name string) {
	if name == "" || s.Has(name) {
		return
	}
	if s.keywords == nil {
		s.keywords = make(map[string][]string)
	}
	s.order = append(s.order, name)
	s.keywords[name] = []string{}
}

// RemoveTactic deletes a tactic and its keywords if present.
func (s *Store) RemoveTactic(name string) {
	if !s.Has(name) {
		return
	}
	delete(s.keywords, name)
	for i, t := range s.order {
		if t == name {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// AddKeyword appends the trimmed keyword to a tactic. Empty keywords and
// unknown tactics are ignored. Duplicates are kept.
func (s *Store) AddKeyword(tactic, keyword string) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || !s.Has(tactic) {
		return
	}
	s.keywords[tactic] = append(s.keywords[tactic], keyword)
}

// RemoveKeyword removes every occurrence of the exact keyword from a tactic.
func (s *Store) RemoveKeyword(tactic, keyword string) {
	if !s.Has(tactic) {
		return
	}
	kept := make([]string, 0, len(s.keywords[tactic]))
	for _, k := range s.keywords[tactic] {
		if k != keyword {
			kept = append(kept, k)
		}
	}
	s.keywords[tactic] = kept
}

// Has reports whether the tactic exists.
func (s *Store) Has(name string) bool {
	if s == nil || s.keywords == nil {
		return false
	}
	_, ok := s.keywords[name]
	return ok
}

// Len returns the number of tactics.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Tactics returns the tactic names in store order.
func (s *Store) Tactics() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Keywords returns a copy of a tactic's keywords, nil for unknown tactics.
func (s *Store) Keywords(tactic string) []string {
	if !s.Has(tactic) {
		return nil
	}
	out := make([]string, len(s.keywords[tactic]))
	copy(out, s.keywords[tactic])
	return out
}

// Entries returns the store contents as an ordered list.
func (s *Store) Entries() []Tactic {
	entries := make([]Tactic, 0, s.Len())
	for _, name := range s.Tactics() {
		entries = append(entries, Tactic{Name: name, Keywords: s.Keywords(name)})
	}
	return entries
}

// Clone returns a deep copy.
func (s *Store) Clone() *Store {
	c := New()
	for _, name := range s.Tactics() {
		c.order = append(c.order, name)
		c.keywords[name] = s.Keywords(name)
	}
	return c
}

// MarshalJSON encodes the store as an ordered list of tactics.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entries())
}

// UnmarshalJSON decodes an ordered list of tactics into the store.
func (s *Store) UnmarshalJSON(data []byte) error {
	var entries []Tactic
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*s = *FromTactics(entries)
	return nil
}
