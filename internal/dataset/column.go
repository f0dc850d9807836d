package dataset

import (
	"strings"

	"tactics/internal/models"
)

// textColumnMarkers are the substrings that identify the column to classify.
var textColumnMarkers = []string{"statement", "text"}

// TextColumn returns the first column whose lower-cased name contains
// "statement" or "text".
func TextColumn(columns []string) (string, bool) {
	for _, col := range columns {
		lower := strings.ToLower(col)
		for _, marker := range textColumnMarkers {
			if strings.Contains(lower, marker) {
				return col, true
			}
		}
	}
	return "", false
}

// RecordsTextColumn looks up the text column from the first record's columns.
func RecordsTextColumn(records []models.Record) (string, bool) {
	if len(records) == 0 {
		return "", false
	}
	return TextColumn(records[0].Columns)
}
