package check

import (
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/taut-hunter/internal/eval"
)

const (
	DefaultMaxVars = 24
	DefaultWorkers = 1
)

type Config struct {
	// MaxVars caps the free variables of an accepted formula. The truth
	// table has 2^MaxVars rows.
	MaxVars int
	// Workers > 1 splits each truth table across that many goroutines.
	Workers int
}

func DefaultConfig() Config {
	return Config{MaxVars: DefaultMaxVars, Workers: DefaultWorkers}
}

// LoadConfig reads MAX_VARS and EVAL_WORKERS, falling back to the defaults.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MAX_VARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_VARS %q: %w", v, err)
		}
		if n < 1 || n > eval.MaxVars {
			return nil, fmt.Errorf("MAX_VARS must be between 1 and %d, got %d", eval.MaxVars, n)
		}
		cfg.MaxVars = n
	}

	if v := os.Getenv("EVAL_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EVAL_WORKERS %q: %w", v, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("EVAL_WORKERS must be positive, got %d", n)
		}
		cfg.Workers = n
	}

	return &cfg, nil
}

func (c Config) normalized() Config {
	if c.MaxVars <= 0 {
		c.MaxVars = DefaultMaxVars
	}
	c.MaxVars = min(c.MaxVars, eval.MaxVars)
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	return c
}
