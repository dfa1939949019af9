package env

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// PathKey names the variable that overrides the .env location.
const PathKey = "ENV_PATH"

// IsLocal reports whether env denotes a developer machine, where a missing .env is an error.
func IsLocal(env string) bool {
	return env == "" || env == "local"
}

// LoadDotEnv loads variables from the file named by ENV_PATH, or defaultPath when unset.
// Variables already present in the process environment win.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv(PathKey)
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if IsLocal(env) {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
		slog.Debug("Skipping .env ...", "path", envPath, "env", env)
	}

	return nil
}
