package handlers

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"tactics/internal/export"
	"tactics/internal/metrics"
	"tactics/internal/validation"
	"tactics/internal/workspace"
)

// UploadDataset replaces the workspace's records with an uploaded CSV file.
func (h *WorkspaceHandler) UploadDataset(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "File is required")
	}
	if valid, msg := validation.ValidateDatasetFile(fh.Filename); !valid {
		return fail(c, fiber.StatusBadRequest, msg)
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	ws, err := h.load(c)
	if err != nil {
		return err
	}
	rows := ws.LoadDataset(string(content))
	metrics.RecordDataset(rows)
	slog.Info("dataset loaded", "file", fh.Filename, "rows", rows)

	return h.respond(c, ws)
}

// Classify runs the classifier over the loaded dataset.
func (h *WorkspaceHandler) Classify(c fiber.Ctx) error {
	ws, err := h.load(c)
	if err != nil {
		return err
	}

	run, err := ws.Classify()
	if err != nil {
		if errors.Is(err, workspace.ErrNoDataset) {
			if isHTMX(c) {
				return htmxError(c, "Upload a dataset before running the classification")
			}
			return c.Redirect().To("/")
		}
		return err
	}

	summary, err := ws.Summary(h.mode)
	if err != nil {
		return err
	}
	metrics.RecordRun("web", summary)
	slog.Info("classification run",
		"run_id", run.ID,
		"rows", summary.Total,
		"text_column", run.TextColumn,
		"any_tactic", summary.AnyTacticCount,
	)

	return h.respond(c, ws)
}

// Download sends the last run as classified_data.csv.
func (h *WorkspaceHandler) Download(c fiber.Ctx) error {
	ws, err := h.load(c)
	if err != nil {
		return err
	}

	csv, err := ws.Export(h.mode)
	if err != nil {
		if errors.Is(err, workspace.ErrNotClassified) {
			return fiber.NewError(fiber.StatusNotFound, "no classification results to download")
		}
		return err
	}
	metrics.RecordExport("csv")

	c.Attachment(export.Filename)
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.SendString(csv)
}
