package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/taut-hunter/internal/check"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type TautApiConfig struct {
	CheckConfig   check.Config
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*TautApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/taut_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	checkCfg, err := check.LoadConfig()
	if err != nil {
		slog.Error("Failed to load check configuration from environment", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &TautApiConfig{
		CheckConfig:   *checkCfg,
		StorageConfig: *storageCfg,
	}, nil
}
