package dictionary

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFile is returned when a dictionary file cannot be decoded.
var ErrInvalidFile = errors.New("invalid dictionary file")

// File is the on-disk shape of a dictionary file:
//
//	tactics:
//	  - name: urgency_marketing
//	    keywords: [hurry, act now]
type File struct {
	Tactics []Tactic `yaml:"tactics"`
}

// LoadYAML decodes a dictionary file into a new store.
func LoadYAML(r io.Reader) (*Store, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return FromTactics(f.Tactics), nil
}

// WriteYAML encodes the store as a dictionary file.
func (s *Store) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Tactics: s.Entries()}); err != nil {
		return fmt.Errorf("failed to encode dictionaries: %w", err)
	}
	return enc.Close()
}
