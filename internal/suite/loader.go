package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) Validate() error {
	if len(s.Formulas) == 0 {
		return fmt.Errorf("suite has no formulas")
	}

	seen := make(map[string]struct{}, len(s.Formulas))
	for i, c := range s.Formulas {
		if c.ID == "" {
			return fmt.Errorf("formula at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate formula id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Formula == "" {
			return fmt.Errorf("formula %q is empty", c.ID)
		}
		switch c.Expect {
		case domain.VerdictTautology, domain.VerdictNotTautology:
		default:
			return fmt.Errorf("formula %q: expect must be %q or %q, got %q",
				c.ID, domain.VerdictTautology, domain.VerdictNotTautology, c.Expect)
		}
		if len(c.Witness) > 0 && c.ExpectsTautology() {
			return fmt.Errorf("formula %q: a tautology has no witness", c.ID)
		}
		for name := range c.Witness {
			if len(name) != 1 || name[0] < 'a' || name[0] > 'z' {
				return fmt.Errorf("formula %q: witness variable %q is not a letter a-z", c.ID, name)
			}
		}
	}
	return nil
}
