package runner

import (
	"runtime"

	"github.com/DjordjeVuckovic/taut-hunter/internal/check"
)

const DefaultRuns = 1

type Config struct {
	// Concurrency bounds how many formulas are checked at once.
	Concurrency int
	// Runs is the number of timed checks per formula.
	Runs  int
	Check check.Config
}

func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Runs:        DefaultRuns,
		Check:       check.DefaultConfig(),
	}
}
