// Package main Taut Hunter API
// @title Taut Hunter API
// @version 1.0
// @description Decides whether propositional formulas are tautologies and keeps a history of checks
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/taut-hunter/docs"
	"github.com/DjordjeVuckovic/taut-hunter/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/taut-hunter/internal/api/server"
	"github.com/DjordjeVuckovic/taut-hunter/internal/check"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const connectTimeout = 30 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	// The backend must exist before the server so /health can probe it.
	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	backend, err := factory.NewBackend(connectCtx, &cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err, "type", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	defer backend.Store.Close()

	s := apiserver.New(sCfg, backend.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Taut Hunter API is running")
	})

	checker := check.New(cfg.CheckConfig, check.WithStorer(backend.Store))
	router.NewCheckRouter(s.Echo, checker, backend.Store).Bind()

	slog.Info("Starting server",
		"port", sCfg.Port,
		"storage", cfg.StorageConfig.Type,
		"max_vars", checker.Config().MaxVars,
		"workers", checker.Config().Workers)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
