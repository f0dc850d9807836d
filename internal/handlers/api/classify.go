package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tactics/internal/classifier"
	"tactics/internal/dataset"
	"tactics/internal/dictionary"
	"tactics/internal/export"
	"tactics/internal/metrics"
	"tactics/internal/models"
	"tactics/internal/validation"
	"tactics/internal/workspace"
)

var errInvalidBody = errors.New("invalid request body")

// ClassifyRequest is the body of the classify and export endpoints.
// Dictionaries are optional; the seed dictionaries are used when omitted.
type ClassifyRequest struct {
	CSV          string              `json:"csv"`
	Dictionaries []dictionary.Tactic `json:"dictionaries,omitempty"`
}

// ClassifyHandler serves the stateless classification API.
type ClassifyHandler struct {
	seed *dictionary.Store
	mode workspace.Mode
}

// NewClassifyHandler creates a new API classify handler.
func NewClassifyHandler(seed *dictionary.Store, mode workspace.Mode) *ClassifyHandler {
	if seed == nil {
		seed = dictionary.Default()
	}
	return &ClassifyHandler{seed: seed, mode: mode}
}

// Classify classifies the posted CSV and returns rows and summary.
func (h *ClassifyHandler) Classify(c fiber.Ctx) error {
	dict, records, err := h.parse(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, column := classifier.ClassifyRecords(records, dict)
	summary := classifier.Summarize(rows, dict)
	metrics.RecordRun("api", summary)

	return jsonSuccess(c, models.ClassifyResponse{
		TextColumn: column,
		Rows:       rows,
		Summary:    summary,
	})
}

// Export classifies the posted CSV and returns it as classified_data.csv.
func (h *ClassifyHandler) Export(c fiber.Ctx) error {
	dict, records, err := h.parse(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, _ := classifier.ClassifyRecords(records, dict)
	metrics.RecordRun("api", classifier.Summarize(rows, dict))
	metrics.RecordExport("csv")

	c.Attachment(export.Filename)
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.SendString(export.ToCSV(rows, dict))
}

// DefaultDictionaries returns the seed dictionaries.
func (h *ClassifyHandler) DefaultDictionaries(c fiber.Ctx) error {
	return jsonSuccess(c, h.seed.Entries())
}

// Workspace describes the caller's session workspace.
func (h *ClassifyHandler) Workspace(c fiber.Ctx) error {
	ws := workspace.New(h.seed)
	if sess := session.FromContext(c); sess != nil {
		if raw, _ := sess.Get(workspace.SessionKey).(string); raw != "" {
			decoded, err := workspace.Decode(raw)
			if err != nil {
				slog.Warn("discarding unreadable workspace", "error", err)
			} else {
				ws = decoded
			}
		}
	}

	resp := models.WorkspaceResponse{
		Dictionaries: ws.Dictionaries.Entries(),
		Rows:         len(ws.Records),
		Classified:   ws.Classified(),
		Mode:         string(h.mode),
	}
	if ws.Classified() {
		resp.RunID = ws.Run.ID.String()
		resp.Summary, _ = ws.Summary(h.mode)
	}
	return jsonSuccess(c, resp)
}

// parse decodes the request body into the dictionaries and records to classify.
func (h *ClassifyHandler) parse(c fiber.Ctx) (*dictionary.Store, []models.Record, error) {
	var body ClassifyRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return nil, nil, errInvalidBody
	}

	dict := h.seed
	if body.Dictionaries != nil {
		for _, t := range body.Dictionaries {
			if valid, msg := validation.ValidateTactic(validation.NormalizeTactic(t.Name)); !valid {
				return nil, nil, errors.New(msg)
			}
		}
		dict = dictionary.FromTactics(body.Dictionaries)
	}

	return dict, dataset.Parse(body.CSV), nil
}
