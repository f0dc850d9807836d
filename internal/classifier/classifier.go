// Package classifier matches record text against tactic dictionaries and
// aggregates the results.
package classifier

import (
	"strings"

	"tactics/internal/dataset"
	"tactics/internal/models"
)

// Dictionary is the read side of a tactic dictionary store.
type Dictionary interface {
	Tactics() []string
	Keywords(tactic string) []string
}

// Classify matches text against every tactic in the dictionary. Matching is
// case-insensitive substring containment with no word boundaries, so "cat"
// matches "concatenate". Empty text yields an empty classification with no
// tactic keys at all.
func Classify(text string, dict Dictionary) models.Classification {
	result := models.Classification{}
	if text == "" {
		return result
	}

	lower := strings.ToLower(text)
	for _, tactic := range dict.Tactics() {
		matches := []string{}
		for _, keyword := range dict.Keywords(tactic) {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				matches = append(matches, keyword)
			}
		}
		result[tactic] = models.MatchResult{
			Present: len(matches) > 0,
			Count:   len(matches),
			Matches: matches,
		}
	}
	return result
}

// ClassifyRecords classifies the text column of every record. The column is
// chosen from the first record's header; without one every record gets an
// empty classification. It returns the chosen column name, or "".
func ClassifyRecords(records []models.Record, dict Dictionary) ([]models.ClassifiedRecord, string) {
	column, _ := dataset.RecordsTextColumn(records)

	classified := make([]models.ClassifiedRecord, 0, len(records))
	for _, r := range records {
		var text string
		if column != "" {
			text = r.Get(column)
		}
		classified = append(classified, models.ClassifiedRecord{
			Record:         r,
			Classification: Classify(text, dict),
		})
	}
	return classified, column
}
