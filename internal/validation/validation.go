package validation

import (
	"path/filepath"
	"strings"
)

// Limits applied to user-supplied dictionary entries.
const (
	MaxTacticLength  = 100
	MaxKeywordLength = 200
)

// NormalizeTactic trims surrounding whitespace from a tactic name.
func NormalizeTactic(name string) string {
	return strings.TrimSpace(name)
}

// ValidateTactic checks that a tactic name can be used as a CSV column prefix.
// Commas, quotes and line breaks would corrupt the exported header.
func ValidateTactic(name string) (bool, string) {
	if name == "" {
		return false, "Tactic name is required"
	}
	if len(name) > MaxTacticLength {
		return false, "Tactic name must be at most 100 characters"
	}
	if strings.ContainsAny(name, ",\"\r\n") {
		return false, "Tactic name cannot contain commas, quotes or line breaks"
	}
	return true, ""
}

// ValidateKeyword checks a keyword before it is added to a tactic. Empty
// keywords are accepted here; the dictionary ignores them.
func ValidateKeyword(keyword string) (bool, string) {
	if len(keyword) > MaxKeywordLength {
		return false, "Keyword must be at most 200 characters"
	}
	if strings.ContainsAny(keyword, "\r\n") {
		return false, "Keyword cannot contain line breaks"
	}
	return true, ""
}

// ValidateDatasetFile checks the name of an uploaded dataset.
func ValidateDatasetFile(filename string) (bool, string) {
	return validateExtension(filename, "Dataset must be a .csv or .txt file", ".csv", ".txt")
}

// ValidateDictionaryFile checks the name of an uploaded dictionary file.
func ValidateDictionaryFile(filename string) (bool, string) {
	return validateExtension(filename, "Dictionary file must be .yaml or .yml", ".yaml", ".yml")
}

func validateExtension(filename, msg string, allowed ...string) (bool, string) {
	if filename == "" {
		return false, "File is required"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return true, ""
		}
	}
	return false, msg
}
