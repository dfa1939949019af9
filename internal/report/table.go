package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
)

type palette struct {
	pass, fail, err, header *color.Color
}

func newPalette(colored bool) palette {
	p := palette{
		pass:   color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
		err:    color.New(color.FgYellow),
		header: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.err, p.header} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) status(s string) string {
	switch s {
	case StatusPass:
		return p.pass.Sprint(s)
	case StatusFail:
		return p.fail.Sprint(s)
	default:
		return p.err.Sprint(s)
	}
}

// WriteTable prints one row per formula. Only the last column is coloured
// so escape codes do not skew the tabwriter alignment.
func WriteTable(r *Report, w io.Writer, colored bool) {
	p := newPalette(colored)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Meta.Suite)

	header := []string{"ID", "Formula", "Expect", "Verdict", "Witness", "Vars", "Checked", "Mean", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Entries {
		formula := e.Canonical
		if formula == "" {
			formula = e.Formula
		}
		row := []string{
			e.ID,
			formula,
			orDash(e.Expect),
			orDash(e.Verdict),
			orDash(FormatWitness(e.Witness)),
			strconv.Itoa(e.Vars),
			strconv.FormatUint(e.Checked, 10),
			fmtDuration(e.Latency.Mean),
			p.status(e.Status),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	fmt.Fprintln(w)
	for _, e := range r.Entries {
		if e.Detail != "" {
			fmt.Fprintf(w, "%s %s: %s\n", p.status(e.Status), e.ID, e.Detail)
		}
	}

	s := r.Summary
	fmt.Fprintf(w, "%s %d/%d passed (%.2f%%), %d failed, %d errors, elapsed %s\n",
		p.header.Sprint("Summary:"), s.Passed, s.Total, s.PassRate, s.Failed, s.Errors, fmtDuration(r.Meta.Elapsed))
}

// FormatWitness renders w sorted by variable, e.g. "p=true, q=false".
func FormatWitness(w map[string]bool) string {
	parts := make([]string, 0, len(w))
	for _, name := range slices.Sorted(maps.Keys(w)) {
		parts = append(parts, name+"="+strconv.FormatBool(w[name]))
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
