package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tactics/internal/handlers"
	"tactics/internal/handlers/api"
	"tactics/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg.IsAuthEnabled())

	// Initialize handlers
	workspaceHandler, err := handlers.NewWorkspaceHandler(s.Cfg)
	if err != nil {
		return err
	}
	probeHandler := handlers.NewProbeHandler(s.Storage)
	apiHandler := api.NewClassifyHandler(s.Cfg.SeedDictionaries(), workspaceHandler.Mode())

	// Probes and metrics stay public
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	if s.Cfg.MetricsEnabled {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// Auth routes - only when OIDC is configured
	if s.Cfg.IsAuthEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/login", authHandler.LoginPage)
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		slog.Info("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Frontend routes
	s.App.Get("/", authMiddleware.RequireAuth, workspaceHandler.Index)
	s.App.Post("/dataset", authMiddleware.RequireAuth, workspaceHandler.UploadDataset)
	s.App.Post("/classify", authMiddleware.RequireAuth, workspaceHandler.Classify)
	s.App.Get("/download", authMiddleware.RequireAuth, workspaceHandler.Download)
	s.App.Post("/tactics", authMiddleware.RequireAuth, workspaceHandler.AddTactic)
	s.App.Post("/tactics/remove", authMiddleware.RequireAuth, workspaceHandler.RemoveTactic)
	s.App.Post("/keywords", authMiddleware.RequireAuth, workspaceHandler.AddKeyword)
	s.App.Post("/keywords/remove", authMiddleware.RequireAuth, workspaceHandler.RemoveKeyword)
	s.App.Post("/dictionaries/reset", authMiddleware.RequireAuth, workspaceHandler.ResetDictionaries)
	s.App.Get("/dictionaries/export", authMiddleware.RequireAuth, workspaceHandler.ExportDictionaries)
	s.App.Post("/dictionaries/import", authMiddleware.RequireAuth, workspaceHandler.ImportDictionaries)

	// JSON API
	v1 := s.App.Group("/api/v1", authMiddleware.RequireAPIAuth)
	v1.Post("/classify", apiHandler.Classify)
	v1.Post("/export", apiHandler.Export)
	v1.Get("/dictionaries/default", apiHandler.DefaultDictionaries)
	v1.Get("/workspace", apiHandler.Workspace)

	return nil
}
