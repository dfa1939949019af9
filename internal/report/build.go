package report

import (
	"github.com/DjordjeVuckovic/taut-hunter/internal/runner"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/utils"
)

func Build(res *runner.Result) *Report {
	r := &Report{
		Meta: Meta{
			Suite:     res.Suite,
			Timestamp: res.Started,
			Elapsed:   res.Elapsed,
			Config: Config{
				Concurrency: res.Config.Concurrency,
				Runs:        res.Config.Runs,
				MaxVars:     res.Config.Check.MaxVars,
				Workers:     res.Config.Check.Workers,
			},
			Environment: NewEnvironmentInfo(),
		},
		Entries: make([]Entry, 0, len(res.Cases)),
	}

	for _, c := range res.Cases {
		e := Entry{
			ID:      c.ID,
			Formula: c.Formula,
			Expect:  c.Expect,
			Latency: c.Latency,
		}

		switch {
		case c.Err != nil:
			e.Status = StatusError
			e.Detail = c.Err.Error()
			r.Summary.Errors++
		case c.Match:
			e.Status = StatusPass
			r.Summary.Passed++
		default:
			e.Status = StatusFail
			e.Detail = c.Mismatch
		}

		if c.Check != nil {
			e.Canonical = c.Check.Canonical
			e.Verdict = c.Check.Verdict
			e.Witness = c.Check.Witness
			e.Vars = len(c.Check.Vars)
			e.Checked = c.Check.Checked
		}
		r.Entries = append(r.Entries, e)
	}

	r.Summary.Total = len(r.Entries)
	r.Summary.Failed = r.Summary.Total - r.Summary.Passed
	if r.Summary.Total > 0 {
		r.Summary.PassRate = utils.RoundFloat64(float64(r.Summary.Passed)/float64(r.Summary.Total)*100, 2)
	}
	return r
}
