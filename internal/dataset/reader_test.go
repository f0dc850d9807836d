package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tactics/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []models.Record
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []models.Record{},
		},
		{
			name:     "whitespace only",
			input:    "  \n\t\n ",
			expected: []models.Record{},
		},
		{
			name:     "header only",
			input:    "ID,Statement",
			expected: []models.Record{},
		},
		{
			name:  "basic rows with trimming",
			input: "\n ID , Statement \n1, Hurry now \n2,Calm day\n",
			expected: []models.Record{
				{Position: 0, Columns: []string{"ID", "Statement"}, Values: map[string]string{"ID": "1", "Statement": "Hurry now"}},
				{Position: 1, Columns: []string{"ID", "Statement"}, Values: map[string]string{"ID": "2", "Statement": "Calm day"}},
			},
		},
		{
			name:  "short row defaults to empty",
			input: "ID,Statement,Source\n1",
			expected: []models.Record{
				{Position: 0, Columns: []string{"ID", "Statement", "Source"}, Values: map[string]string{"ID": "1", "Statement": "", "Source": ""}},
			},
		},
		{
			name:  "extra cells dropped",
			input: "ID,Statement\n1,a,b,c",
			expected: []models.Record{
				{Position: 0, Columns: []string{"ID", "Statement"}, Values: map[string]string{"ID": "1", "Statement": "a"}},
			},
		},
		{
			name:  "comma inside value splits the cell",
			input: "ID,Statement\n1,Hurry, limited time only!",
			expected: []models.Record{
				{Position: 0, Columns: []string{"ID", "Statement"}, Values: map[string]string{"ID": "1", "Statement": "Hurry"}},
			},
		},
		{
			name:  "crlf line endings",
			input: "ID,Text\r\n1,hello\r\n",
			expected: []models.Record{
				{Position: 0, Columns: []string{"ID", "Text"}, Values: map[string]string{"ID": "1", "Text": "hello"}},
			},
		},
		{
			name:  "blank middle line becomes empty record",
			input: "ID,Text\n1,a\n\n2,b",
			expected: []models.Record{
				{Position: 0, Columns: []string{"ID", "Text"}, Values: map[string]string{"ID": "1", "Text": "a"}},
				{Position: 1, Columns: []string{"ID", "Text"}, Values: map[string]string{"ID": "", "Text": ""}},
				{Position: 2, Columns: []string{"ID", "Text"}, Values: map[string]string{"ID": "2", "Text": "b"}},
			},
		},
		{
			name:  "duplicate header keeps first position, last value",
			input: "A,B,A\n1,2,3\n4,5",
			expected: []models.Record{
				{Position: 0, Columns: []string{"A", "B"}, Values: map[string]string{"A": "3", "B": "2"}},
				{Position: 1, Columns: []string{"A", "B"}, Values: map[string]string{"A": "", "B": "5"}},
			},
		},
		{
			name:  "quotes are kept verbatim",
			input: `ID,Statement` + "\n" + `1,"quoted"`,
			expected: []models.Record{
				{Position: 0, Columns: []string{"ID", "Statement"}, Values: map[string]string{"ID": "1", "Statement": `"quoted"`}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_PositionsAreStable(t *testing.T) {
	var b strings.Builder
	b.WriteString("ID,Text\n")
	for i := 0; i < 50; i++ {
		b.WriteString("x,y\n")
	}
	for i, r := range Parse(b.String()) {
		if r.Position != i {
			t.Fatalf("record %d has Position %d", i, r.Position)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseReader(t *testing.T) {
	records, err := ParseReader(strings.NewReader("ID,Text\n1,hi"))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if len(records) != 1 || records[0].Get("Text") != "hi" {
		t.Errorf("unexpected records: %+v", records)
	}

	if _, err := ParseReader(failingReader{}); err == nil {
		t.Error("expected error from failing reader")
	}
}
