package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v3"

	"tactics/internal/dictionary"
	"tactics/internal/metrics"
	"tactics/internal/validation"
	"tactics/internal/workspace"
)

const (
	dictionaryFilename    = "dictionaries.yaml"
	dictionaryContentType = "application/yaml"
)

// AddTactic adds an empty tactic. Existing names are left untouched.
func (h *WorkspaceHandler) AddTactic(c fiber.Ctx) error {
	name := validation.NormalizeTactic(c.FormValue("tactic"))
	if valid, msg := validation.ValidateTactic(name); !valid {
		return fail(c, fiber.StatusBadRequest, msg)
	}

	return h.mutate(c, func(ws *workspace.Workspace) {
		ws.Dictionaries.AddTactic(name)
	})
}

// RemoveTactic deletes a tactic and its keywords.
func (h *WorkspaceHandler) RemoveTactic(c fiber.Ctx) error {
	name := c.FormValue("tactic")
	return h.mutate(c, func(ws *workspace.Workspace) {
		ws.Dictionaries.RemoveTactic(name)
	})
}

// AddKeyword appends a keyword to a tactic.
func (h *WorkspaceHandler) AddKeyword(c fiber.Ctx) error {
	tactic := c.FormValue("tactic")
	keyword := c.FormValue("keyword")
	if valid, msg := validation.ValidateKeyword(keyword); !valid {
		return fail(c, fiber.StatusBadRequest, msg)
	}

	return h.mutate(c, func(ws *workspace.Workspace) {
		ws.Dictionaries.AddKeyword(tactic, keyword)
	})
}

// RemoveKeyword removes every occurrence of a keyword from a tactic.
func (h *WorkspaceHandler) RemoveKeyword(c fiber.Ctx) error {
	tactic := c.FormValue("tactic")
	keyword := c.FormValue("keyword")
	return h.mutate(c, func(ws *workspace.Workspace) {
		ws.Dictionaries.RemoveKeyword(tactic, keyword)
	})
}

// ResetDictionaries restores the configured seed dictionaries.
func (h *WorkspaceHandler) ResetDictionaries(c fiber.Ctx) error {
	return h.mutate(c, func(ws *workspace.Workspace) {
		ws.ResetDictionaries(h.seed)
	})
}

// ExportDictionaries sends the current dictionaries as a YAML file.
func (h *WorkspaceHandler) ExportDictionaries(c fiber.Ctx) error {
	ws, err := h.load(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := ws.Dictionaries.WriteYAML(&buf); err != nil {
		return err
	}
	metrics.RecordExport("yaml")

	c.Attachment(dictionaryFilename)
	c.Set(fiber.HeaderContentType, dictionaryContentType)
	return c.Send(buf.Bytes())
}

// ImportDictionaries replaces the dictionaries with an uploaded YAML file.
func (h *WorkspaceHandler) ImportDictionaries(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "File is required")
	}
	if valid, msg := validation.ValidateDictionaryFile(fh.Filename); !valid {
		return fail(c, fiber.StatusBadRequest, msg)
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	dict, err := dictionary.LoadYAML(f)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Dictionary file could not be read")
	}

	for _, tactic := range dict.Tactics() {
		if valid, msg := validation.ValidateTactic(tactic); !valid {
			return fail(c, fiber.StatusBadRequest, msg)
		}
	}

	return h.mutate(c, func(ws *workspace.Workspace) {
		ws.ReplaceDictionaries(dict)
	})
}
