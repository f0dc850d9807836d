package export

import (
	"strings"
	"testing"

	"tactics/internal/classifier"
	"tactics/internal/dataset"
	"tactics/internal/dictionary"
	"tactics/internal/models"
	"tactics/internal/testutil"
)

func TestToCSV_TwoRowScenario(t *testing.T) {
	dict := dictionary.Default()
	columns := []string{"ID", "Statement"}
	records := []models.Record{
		{Position: 0, Columns: columns, Values: map[string]string{"ID": "1", "Statement": "Hurry, limited time only!"}},
		{Position: 1, Columns: columns, Values: map[string]string{"ID": "2", "Statement": "A calm, ordinary day."}},
	}
	classified, _ := classifier.ClassifyRecords(records, dict)

	lines := strings.Split(ToCSV(classified, dict), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	wantHeader := "ID,Statement," +
		"urgency_marketing_present,urgency_marketing_count,urgency_marketing_matches," +
		"exclusive_marketing_present,exclusive_marketing_count,exclusive_marketing_matches"
	if lines[0] != wantHeader {
		t.Errorf("header = %q\nwant     %q", lines[0], wantHeader)
	}

	wantRow1 := `"1","Hurry, limited time only!",true,3,"limited, limited time, hurry",false,0,""`
	if lines[1] != wantRow1 {
		t.Errorf("row 1 = %q\nwant    %q", lines[1], wantRow1)
	}

	wantRow2 := `"2","A calm, ordinary day.",false,0,"",false,0,""`
	if lines[2] != wantRow2 {
		t.Errorf("row 2 = %q\nwant    %q", lines[2], wantRow2)
	}
}

func TestToCSV_NoTrailingNewline(t *testing.T) {
	dict := dictionary.Default()
	classified, _ := classifier.ClassifyRecords(dataset.Parse(testutil.SampleCSV), dict)

	out := ToCSV(classified, dict)
	if strings.HasSuffix(out, "\n") {
		t.Error("export should not end with a newline")
	}
}

func TestToCSV_StaleDictionaries(t *testing.T) {
	dict := dictionary.Default()
	classified, _ := classifier.ClassifyRecords(dataset.Parse(testutil.SampleCSV), dict)

	dict.AddTactic("scarcity")
	dict.RemoveTactic(dictionary.ExclusiveMarketing)

	lines := strings.Split(ToCSV(classified, dict), "\n")
	if !strings.HasSuffix(lines[0], "scarcity_present,scarcity_count,scarcity_matches") {
		t.Errorf("header missing new tactic: %q", lines[0])
	}
	if strings.Contains(lines[0], dictionary.ExclusiveMarketing) {
		t.Errorf("header still contains removed tactic: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], `,false,0,""`) {
		t.Errorf("unclassified tactic should default to false,0,\"\": %q", lines[1])
	}
}

func TestToCSV_EmptyClassification(t *testing.T) {
	dict := dictionary.Default()
	classified, _ := classifier.ClassifyRecords(dataset.Parse("ID,Body\n7,hurry"), dict)

	lines := strings.Split(ToCSV(classified, dict), "\n")
	want := `"7","hurry",false,0,"",false,0,""`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestToCSV_QuotesNotEscaped(t *testing.T) {
	dict := dictionary.New()
	classified, _ := classifier.ClassifyRecords(dataset.Parse("ID,Text\n1,say \"hi\""), dict)

	lines := strings.Split(ToCSV(classified, dict), "\n")
	if lines[1] != `"1","say "hi""` {
		t.Errorf("row = %q", lines[1])
	}
}

func TestToCSV_NoRecords(t *testing.T) {
	got := ToCSV(nil, dictionary.Default())
	want := "urgency_marketing_present,urgency_marketing_count,urgency_marketing_matches," +
		"exclusive_marketing_present,exclusive_marketing_count,exclusive_marketing_matches"
	if got != want {
		t.Errorf("ToCSV(nil) = %q, want %q", got, want)
	}
}
