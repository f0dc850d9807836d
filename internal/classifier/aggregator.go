package classifier

import (
	"math"

	"tactics/internal/models"
)

// Summarize counts, per tactic in dict order, how many records have the
// tactic present, and how many have at least one tactic present. Tactics
// missing from a record's classification count as not present. With no
// records every count and percentage is zero.
func Summarize(records []models.ClassifiedRecord, dict Dictionary) *models.Summary {
	tactics := dict.Tactics()
	summary := &models.Summary{
		Tactics:   tactics,
		PerTactic: make(map[string]models.TacticStat, len(tactics)),
		Total:     len(records),
	}

	for _, tactic := range tactics {
		count := 0
		for _, r := range records {
			if r.Classification.Present(tactic) {
				count++
			}
		}
		summary.PerTactic[tactic] = models.TacticStat{
			Count:      count,
			Percentage: percentage(count, summary.Total),
		}
	}

	for _, r := range records {
		if r.Classification.AnyPresent(tactics) {
			summary.AnyTacticCount++
		}
	}

	return summary
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
