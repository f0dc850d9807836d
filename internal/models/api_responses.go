package models

import "tactics/internal/dictionary"

// ClassifyResponse is the payload of the stateless classify API.
type ClassifyResponse struct {
	TextColumn string             `json:"text_column"`
	Rows       []ClassifiedRecord `json:"rows"`
	Summary    *Summary           `json:"summary"`
}

// WorkspaceResponse describes a session's workspace.
type WorkspaceResponse struct {
	Dictionaries []dictionary.Tactic `json:"dictionaries"`
	Rows         int                 `json:"rows"`
	Classified   bool                `json:"classified"`
	RunID        string              `json:"run_id,omitempty"`
	Mode         string              `json:"mode"`
	Summary      *Summary            `json:"summary,omitempty"`
}
