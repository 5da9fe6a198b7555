// Package main Newsdesk API
// @title Newsdesk API
// @version 1.0
// @description Article publishing backend for the rbiomeds family of sites
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/rbiomeds/newsdesk/docs"
	"github.com/rbiomeds/newsdesk/internal/api/router"
	mediafactory "github.com/rbiomeds/newsdesk/internal/media/factory"
	"github.com/rbiomeds/newsdesk/internal/server"
	storagefactory "github.com/rbiomeds/newsdesk/internal/storage/factory"
	pkgserver "github.com/rbiomeds/newsdesk/pkg/server"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(cfg.Server, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Newsdesk API is running")
	})

	ctx := context.Background()

	storer, err := storagefactory.NewStorer(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to create article store", "error", err)
		os.Exit(1)
		return
	}

	gateway, err := mediafactory.NewGateway(ctx, cfg.Media)
	if err != nil {
		slog.Error("Failed to create media upload gateway", "error", err)
		os.Exit(1)
		return
	}

	articlesRouter := router.NewArticlesRouter(s.Echo, storer, cfg.Sites)
	articlesRouter.Bind()

	uploadRouter := router.NewUploadRouter(s.Echo, gateway)
	uploadRouter.Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
