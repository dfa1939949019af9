package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	VerdictTautology    = "tautology"
	VerdictNotTautology = "not_tautology"
)

// Check is the persisted outcome of checking one formula.
type Check struct {
	ID        uuid.UUID `json:"id"`
	Formula   string    `json:"formula"`
	Canonical string    `json:"canonical"`
	Verdict   string    `json:"verdict"`
	// Witness is set only for non-tautologies.
	Witness   map[string]bool `json:"witness,omitempty"`
	Vars      []string        `json:"vars"`
	Checked   uint64          `json:"checked"`
	Duration  time.Duration   `json:"duration"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (c *Check) IsTautology() bool {
	return c.Verdict == VerdictTautology
}
