package runner

import (
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
)

type CaseResult struct {
	ID      string
	Formula string
	Expect  string
	// Check is nil when Err is set.
	Check *domain.Check
	Err   error
	// Match reports whether the verdict, and the witness when one is
	// expected, agree with the suite.
	Match    bool
	Mismatch string
	Latency  LatencyStats
}

type Result struct {
	Suite   string
	Cases   []CaseResult
	Config  Config
	Started time.Time
	Elapsed time.Duration
}

func (r *Result) Passed() int {
	n := 0
	for _, c := range r.Cases {
		if c.Match {
			n++
		}
	}
	return n
}

func (r *Result) Failed() int {
	return len(r.Cases) - r.Passed()
}

func (r *Result) OK() bool {
	return r.Failed() == 0
}
