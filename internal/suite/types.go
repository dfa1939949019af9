package suite

import "github.com/DjordjeVuckovic/taut-hunter/internal/domain"

// Suite is a named list of formulas with their expected verdicts.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Formulas    []Case `yaml:"formulas"`
}

type Case struct {
	ID      string `yaml:"id"`
	Formula string `yaml:"formula"`
	Expect  string `yaml:"expect"`
	// Witness, when set, must equal the lowest falsifying assignment.
	Witness map[string]bool `yaml:"witness,omitempty"`
}

func (c Case) ExpectsTautology() bool {
	return c.Expect == domain.VerdictTautology
}
