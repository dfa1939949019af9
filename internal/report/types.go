package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/runner"
)

type Report struct {
	Meta    Meta    `json:"meta"`
	Summary Summary `json:"summary"`
	Entries []Entry `json:"entries"`
}

type Meta struct {
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Elapsed     time.Duration   `json:"elapsed"`
	Config      Config          `json:"config"`
	Environment EnvironmentInfo `json:"environment"`
}

type Config struct {
	Concurrency int `json:"concurrency"`
	Runs        int `json:"runs"`
	MaxVars     int `json:"max_vars"`
	Workers     int `json:"workers"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Errors   int     `json:"errors"`
	PassRate float64 `json:"pass_rate"`
}

const (
	StatusPass  = "PASS"
	StatusFail  = "FAIL"
	StatusError = "ERR"
)

type Entry struct {
	ID        string              `json:"id"`
	Formula   string              `json:"formula"`
	Canonical string              `json:"canonical,omitempty"`
	Expect    string              `json:"expect,omitempty"`
	Verdict   string              `json:"verdict,omitempty"`
	Witness   map[string]bool     `json:"witness,omitempty"`
	Vars      int                 `json:"vars"`
	Checked   uint64              `json:"checked"`
	Latency   runner.LatencyStats `json:"latency"`
	Status    string              `json:"status"`
	Detail    string              `json:"detail,omitempty"`
}
