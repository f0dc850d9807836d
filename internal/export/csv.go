// Package export serializes classified records back to CSV text.
package export

import (
	"strconv"
	"strings"

	"tactics/internal/models"
)

// Download conventions for exported results.
const (
	Filename    = "classified_data.csv"
	ContentType = "text/csv"
)

// Dictionary supplies the tactic order for the exported columns.
type Dictionary interface {
	Tactics() []string
}

// ToCSV renders records followed by three columns per tactic:
// {tactic}_present, {tactic}_count and {tactic}_matches. Cell values and
// the joined matches are wrapped in double quotes without escaping. Tactics a
// record was not classified against export as false, 0 and "". Lines are
// joined by "\n" with no trailing newline.
func ToCSV(records []models.ClassifiedRecord, dict Dictionary) string {
	tactics := dict.Tactics()

	var columns []string
	if len(records) > 0 {
		columns = records[0].Columns
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, header(columns, tactics))
	for _, r := range records {
		lines = append(lines, row(r, tactics))
	}
	return strings.Join(lines, "\n")
}

func header(columns, tactics []string) string {
	fields := make([]string, 0, len(columns)+3*len(tactics))
	fields = append(fields, columns...)
	for _, t := range tactics {
		fields = append(fields, t+"_present", t+"_count", t+"_matches")
	}
	return strings.Join(fields, ",")
}

func row(r models.ClassifiedRecord, tactics []string) string {
	fields := make([]string, 0, len(r.Columns)+3*len(tactics))
	for _, col := range r.Columns {
		fields = append(fields, quote(r.Get(col)))
	}
	for _, t := range tactics {
		result, _ := r.Classification.Result(t)
		fields = append(fields,
			strconv.FormatBool(result.Present),
			strconv.Itoa(result.Count),
			quote(strings.Join(result.Matches, ", ")),
		)
	}
	return strings.Join(fields, ",")
}

func quote(s string) string {
	return `"` + s + `"`
}
