package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"tactics/internal/workspace"
)

// TacticView is one dictionary entry as shown in the editor.
type TacticView struct {
	Name     string
	Keywords []string
}

// StatView is one summary card.
type StatView struct {
	Tactic     string
	Count      int
	Total      int
	Percentage string
}

// MatchView is one tactic line in a detailed result.
type MatchView struct {
	Tactic  string
	Present bool
	Matches string
}

// RowView is one detailed result.
type RowView struct {
	Label   string
	Text    string
	Matches []MatchView
}

// viewData builds the template data for the workspace partial.
func (h *WorkspaceHandler) viewData(ws *workspace.Workspace) fiber.Map {
	tactics := make([]TacticView, 0, ws.Dictionaries.Len())
	for _, entry := range ws.Dictionaries.Entries() {
		tactics = append(tactics, TacticView{Name: entry.Name, Keywords: entry.Keywords})
	}

	data := fiber.Map{
		"Tactics":    tactics,
		"HasDataset": ws.HasDataset(),
		"RowCount":   len(ws.Records),
		"Classified": ws.Classified(),
		"Mode":       string(h.mode),
	}

	summary, err := ws.Summary(h.mode)
	if err != nil {
		return data
	}

	stats := make([]StatView, 0, len(summary.Tactics))
	for _, tactic := range summary.Tactics {
		stat := summary.Stat(tactic)
		stats = append(stats, StatView{
			Tactic:     tactic,
			Count:      stat.Count,
			Total:      summary.Total,
			Percentage: stat.PercentageLabel(),
		})
	}

	dict := ws.DictionariesFor(h.mode)
	rows := make([]RowView, 0, len(ws.Results))
	for _, r := range ws.Results {
		row := RowView{
			Label: r.Label(),
			Text:  r.Get(ws.Run.TextColumn),
		}
		for _, tactic := range dict.Tactics() {
			result, _ := r.Classification.Result(tactic)
			row.Matches = append(row.Matches, MatchView{
				Tactic:  tactic,
				Present: result.Present,
				Matches: strings.Join(result.Matches, ", "),
			})
		}
		rows = append(rows, row)
	}

	data["Stats"] = stats
	data["Total"] = summary.Total
	data["AnyTacticCount"] = summary.AnyTacticCount
	data["Rows"] = rows
	data["RunID"] = ws.Run.ID.String()
	data["TextColumn"] = ws.Run.TextColumn
	return data
}
