package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Formulas(t *testing.T) {
	t.Run("verdicts", func(t *testing.T) {
		code, out, _ := runCLI(t, "-color", "never", "(p ∨ ¬p)", "(p → q)")
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "tautology (p ∨ ¬p)\n")
		assert.Contains(t, out, "not_tautology (p → q)\n  counterexample: p=true, q=false\n")
	})

	t.Run("tree", func(t *testing.T) {
		code, out, _ := runCLI(t, "-color", "never", "-tree", "¬p")
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "  ¬\n  └── p\n")
	})

	t.Run("syntax error points at position", func(t *testing.T) {
		code, out, _ := runCLI(t, "-color", "never", "(p q)")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "error invalid formula: unexpected token VAR(q) at position 3")
		assert.Contains(t, out, "  (p q)\n     ^\n")
	})

	t.Run("colored", func(t *testing.T) {
		_, out, _ := runCLI(t, "-color", "always", "T")
		assert.Contains(t, out, "\x1b[")
	})

	t.Run("too many variables", func(t *testing.T) {
		code, out, _ := runCLI(t, "-color", "never", "-max-vars", "1", "(p ∨ q)")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "at most 1 are allowed")
	})
}

func TestRun_Suite(t *testing.T) {
	t.Run("bundled classic suite", func(t *testing.T) {
		jsonPath := filepath.Join(t.TempDir(), "report.json")
		code, out, _ := runCLI(t, "-color", "never", "-json", jsonPath)
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "=== Suite: classic ===")
		assert.Contains(t, out, "Summary: 9/9 passed")

		data, err := os.ReadFile(jsonPath)
		require.NoError(t, err)
		var rep map[string]any
		require.NoError(t, json.Unmarshal(data, &rep))
		assert.Contains(t, rep, "summary")
	})

	t.Run("failing expectation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: f\nformulas: [{id: a, formula: p, expect: tautology}]\n"), 0o644))

		code, out, _ := runCLI(t, "-color", "never", "-suite", path)
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "FAIL a: expected tautology, got not_tautology")
	})

	t.Run("missing suite file", func(t *testing.T) {
		code, _, _ := runCLI(t, "-suite", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Equal(t, 1, code)
	})
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "suite with formulas", args: []string{"-suite", "x.yaml", "p"}},
		{name: "json with formulas", args: []string{"-json", "r.json", "p"}},
		{name: "max vars too large", args: []string{"-max-vars", "27"}},
		{name: "zero workers", args: []string{"-workers", "0"}},
		{name: "bad color", args: []string{"-color", "sometimes"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := parseFlags(tt.args, &stderr)
			assert.Error(t, err)
		})
	}

	t.Run("usage exits cleanly", func(t *testing.T) {
		code, _, errOut := runCLI(t, "-h")
		assert.Equal(t, 0, code)
		assert.Contains(t, errOut, "Usage: taut")
	})

	t.Run("invalid flags exit 2", func(t *testing.T) {
		code, _, _ := runCLI(t, "-workers", "0")
		assert.Equal(t, 2, code)
	})
}

func TestColored(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, cliConfig{Color: "always"}.colored(&buf))
	assert.False(t, cliConfig{Color: "never"}.colored(&buf))
	assert.False(t, cliConfig{Color: "auto"}.colored(&buf), "non-file writers are not terminals")
}
