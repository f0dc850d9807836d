// Package dataset parses uploaded CSV text into records.
//
// Parsing is intentionally naive: lines are split on "\n" and cells on ",".
// Quoted fields are not supported, so a comma inside a value splits it.
package dataset

import (
	"fmt"
	"io"
	"strings"

	"tactics/internal/models"
)

// Parse turns raw CSV text into records. The first line is the header; each
// following line is mapped positionally onto it. Short rows get "" for the
// missing cells and extra cells are dropped. Empty input yields no records.
func Parse(text string) []models.Record {
	text = strings.TrimSpace(text)
	if text == "" {
		return []models.Record{}
	}

	lines := strings.Split(text, "\n")
	columns, index := parseHeader(lines[0])

	records := make([]models.Record, 0, len(lines)-1)
	for i, line := range lines[1:] {
		cells := splitLine(line)
		values := make(map[string]string, len(columns))
		for pos, col := range index {
			values[col] = ""
			if pos < len(cells) {
				values[col] = cells[pos]
			}
		}
		records = append(records, models.Record{
			Position: i,
			Columns:  columns,
			Values:   values,
		})
	}
	return records
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader) ([]models.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(string(data)), nil
}

// parseHeader returns the distinct column names in first-seen order and the
// column name for every header position. When a name repeats, the later
// position's value wins.
func parseHeader(line string) ([]string, []string) {
	index := splitLine(line)
	seen := make(map[string]bool, len(index))
	columns := make([]string, 0, len(index))
	for _, name := range index {
		if !seen[name] {
			seen[name] = true
			columns = append(columns, name)
		}
	}
	return columns, index
}

func splitLine(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
