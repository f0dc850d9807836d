package models

// Record is one parsed CSV row. Columns keeps the header order of the dataset
// the record came from; Position is the zero-based row index below the header.
type Record struct {
	Position int               `json:"position"`
	Columns  []string          `json:"columns"`
	Values   map[string]string `json:"values"`
}

// Get returns the cell value for a column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r.Values[column]
}

// Label returns the row's ID column when present, otherwise a 1-based row name.
func (r Record) Label() string {
	if id := r.Values["ID"]; id != "" {
		return id
	}
	return "Row " + itoa(r.Position+1)
}

// ClassifiedRecord is a Record with the keyword matches found in its text column.
type ClassifiedRecord struct {
	Record
	Classification Classification `json:"classification"`
}
