package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/taut-hunter/pkg/config/env"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/utils"
)

const DefaultPort = "8080"

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/taut_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitTrim(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		UseHttp2:    os.Getenv("USE_HTTP2") == "true",
		CorsOrigins: origins,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
