package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/google/uuid"
)

// Document is the indexed shape of a domain.Check.
type Document struct {
	ID         string          `json:"id"`
	Formula    string          `json:"formula"`
	Canonical  string          `json:"canonical"`
	Verdict    string          `json:"verdict"`
	Witness    map[string]bool `json:"witness,omitempty"`
	Vars       []string        `json:"vars"`
	Checked    uint64          `json:"checked"`
	DurationNs int64           `json:"duration_ns"`
	CreatedAt  time.Time       `json:"created_at"`
	IndexedAt  time.Time       `json:"indexed_at"`
}

func toDocument(c domain.Check, now time.Time) Document {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.Vars == nil {
		c.Vars = []string{}
	}
	return Document{
		ID:         c.ID.String(),
		Formula:    c.Formula,
		Canonical:  c.Canonical,
		Verdict:    c.Verdict,
		Witness:    c.Witness,
		Vars:       c.Vars,
		Checked:    c.Checked,
		DurationNs: c.Duration.Nanoseconds(),
		CreatedAt:  c.CreatedAt,
		IndexedAt:  now,
	}
}

func (d Document) toDomain() (domain.Check, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Check{}, fmt.Errorf("invalid document id %q: %w", d.ID, err)
	}
	return domain.Check{
		ID:        id,
		Formula:   d.Formula,
		Canonical: d.Canonical,
		Verdict:   d.Verdict,
		Witness:   d.Witness,
		Vars:      d.Vars,
		Checked:   d.Checked,
		Duration:  time.Duration(d.DurationNs),
		CreatedAt: d.CreatedAt,
	}, nil
}
