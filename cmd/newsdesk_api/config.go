package main

import (
	"log/slog"
	"os"

	mediafactory "github.com/rbiomeds/newsdesk/internal/media/factory"
	"github.com/rbiomeds/newsdesk/internal/server"
	"github.com/rbiomeds/newsdesk/internal/sitequery"
	storagefactory "github.com/rbiomeds/newsdesk/internal/storage/factory"
	"github.com/rbiomeds/newsdesk/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsdeskConfig struct {
	Server  *server.Config
	Storage storagefactory.StorageConfig
	Media   mediafactory.MediaConfig
	Sites   sitequery.Registry
}

func (as *AppConfig) Load() (*NewsdeskConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/newsdesk_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		return nil, err
	}

	storageCfg, err := storagefactory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	mediaCfg, err := mediafactory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load media configuration from environment", "error", err)
		return nil, err
	}

	registry, err := sitequery.LoadRegistry(os.Getenv("SITES_CONFIG_PATH"))
	if err != nil {
		slog.Error("Failed to load site registry", "error", err)
		return nil, err
	}

	return &NewsdeskConfig{
		Server:  serverCfg,
		Storage: *storageCfg,
		Media:   *mediaCfg,
		Sites:   registry,
	}, nil
}
