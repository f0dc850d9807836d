package validation

import (
	"strings"
	"testing"
)

func TestNormalizeTactic(t *testing.T) {
	if got := NormalizeTactic("  scarcity_marketing \n"); got != "scarcity_marketing" {
		t.Errorf("NormalizeTactic() = %q", got)
	}
}

func TestValidateTactic(t *testing.T) {
	tests := []struct {
		name    string
		tactic  string
		valid   bool
		wantMsg string
	}{
		{"simple", "scarcity_marketing", true, ""},
		{"with spaces", "social proof", true, ""},
		{"unicode", "urgência", true, ""},
		{"empty", "", false, "Tactic name is required"},
		{"too long", strings.Repeat("a", 101), false, "Tactic name must be at most 100 characters"},
		{"max length", strings.Repeat("a", 100), true, ""},
		{"comma", "a,b", false, "Tactic name cannot contain commas, quotes or line breaks"},
		{"quote", `a"b`, false, "Tactic name cannot contain commas, quotes or line breaks"},
		{"newline", "a\nb", false, "Tactic name cannot contain commas, quotes or line breaks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateTactic(tt.tactic)
			if valid != tt.valid {
				t.Errorf("ValidateTactic(%q) valid = %v, want %v", tt.tactic, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateTactic(%q) msg = %q, want %q", tt.tactic, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		valid   bool
	}{
		{"phrase", "limited time", true},
		{"apostrophe", "don't wait", true},
		{"comma allowed", "hurry, now", true},
		{"empty allowed", "", true},
		{"too long", strings.Repeat("k", 201), false},
		{"newline", "a\nb", false},
		{"carriage return", "a\rb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if valid, _ := ValidateKeyword(tt.keyword); valid != tt.valid {
				t.Errorf("ValidateKeyword(%q) = %v, want %v", tt.keyword, valid, tt.valid)
			}
		})
	}
}

func TestValidateDatasetFile(t *testing.T) {
	tests := []struct {
		filename string
		valid    bool
	}{
		{"data.csv", true},
		{"DATA.CSV", true},
		{"notes.txt", true},
		{"sheet.xlsx", false},
		{"csv", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if valid, _ := ValidateDatasetFile(tt.filename); valid != tt.valid {
				t.Errorf("ValidateDatasetFile(%q) = %v, want %v", tt.filename, valid, tt.valid)
			}
		})
	}
}

func TestValidateDictionaryFile(t *testing.T) {
	tests := []struct {
		filename string
		valid    bool
		wantMsg  string
	}{
		{"dictionaries.yaml", true, ""},
		{"dictionaries.YML", true, ""},
		{"dictionaries.json", false, "Dictionary file must be .yaml or .yml"},
		{"", false, "File is required"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			valid, msg := ValidateDictionaryFile(tt.filename)
			if valid != tt.valid || msg != tt.wantMsg {
				t.Errorf("ValidateDictionaryFile(%q) = (%v, %q), want (%v, %q)", tt.filename, valid, msg, tt.valid, tt.wantMsg)
			}
		})
	}
}
