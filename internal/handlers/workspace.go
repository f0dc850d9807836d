package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tactics/internal/config"
	"tactics/internal/dictionary"
	"tactics/internal/models"
	"tactics/internal/workspace"
)

// WorkspaceHandler serves the single-screen classifier page and the form
// actions that change the session's workspace.
type WorkspaceHandler struct {
	cfg  *config.Config
	seed *dictionary.Store
	mode workspace.Mode
}

// NewWorkspaceHandler creates a new workspace handler.
func NewWorkspaceHandler(cfg *config.Config) (*WorkspaceHandler, error) {
	mode, err := workspace.ParseMode(cfg.DictionaryMode)
	if err != nil {
		return nil, err
	}
	return &WorkspaceHandler{
		cfg:  cfg,
		seed: cfg.SeedDictionaries(),
		mode: mode,
	}, nil
}

// Index renders the classifier page.
func (h *WorkspaceHandler) Index(c fiber.Ctx) error {
	ws, err := h.load(c)
	if err != nil {
		return err
	}
	user, _ := c.Locals("user").(*models.User)

	data := h.viewData(ws)
	data["User"] = user
	return c.Render("index", MergeBranding(data, h.cfg))
}

// load returns the session's workspace, or a fresh one seeded with the
// configured dictionaries.
func (h *WorkspaceHandler) load(c fiber.Ctx) (*workspace.Workspace, error) {
	sess := session.FromContext(c)
	if sess == nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	raw, _ := sess.Get(workspace.SessionKey).(string)
	if raw == "" {
		return workspace.New(h.seed), nil
	}

	ws, err := workspace.Decode(raw)
	if err != nil {
		slog.Warn("discarding unreadable workspace", "error", err)
		return workspace.New(h.seed), nil
	}
	return ws, nil
}

func (h *WorkspaceHandler) save(c fiber.Ctx, ws *workspace.Workspace) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	raw, err := ws.Encode()
	if err != nil {
		return err
	}
	sess.Set(workspace.SessionKey, raw)
	return nil
}

// respond saves the workspace and shows the result: the refreshed workspace
// partial for HTMX, a redirect back to the page otherwise.
func (h *WorkspaceHandler) respond(c fiber.Ctx, ws *workspace.Workspace) error {
	if err := h.save(c, ws); err != nil {
		return err
	}
	if isHTMX(c) {
		return c.Render("partials/workspace", h.viewData(ws), "")
	}
	return c.Redirect().To("/")
}

// mutate loads the workspace, applies fn and responds.
func (h *WorkspaceHandler) mutate(c fiber.Ctx, fn func(ws *workspace.Workspace)) error {
	ws, err := h.load(c)
	if err != nil {
		return err
	}
	fn(ws)
	return h.respond(c, ws)
}

// Mode returns the dictionary mode summaries and exports are computed in.
func (h *WorkspaceHandler) Mode() workspace.Mode {
	return h.mode
}
