package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specYAML = `
args:
  - fast:
      long: fast
      conflicts_with: safe
  - safe:
      long: safe
  - output:
      short: o
      long: output
      takes_value: true
      default_value: out.txt
  - input:
      required: true
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func exitCode(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if err != nil {
		return 1
	}

	return 0
}

func TestLint(t *testing.T) {
	out, _, err := run(t, "lint", writeSpec(t, "spec.yaml", specYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "4 arguments, 0 groups")
	assert.Contains(t, out, "--output [output]")

	_, stderr, err := run(t, "lint", writeSpec(t, "bad.yaml", "args:\n  - a:\n      requires: ghost\n"))
	assert.Equal(t, exitConfig, exitCode(err))
	assert.Contains(t, stderr, "ghost")

	_, _, err = run(t, "lint", writeSpec(t, "spec.json", "{}"))
	assert.Equal(t, exitConfig, exitCode(err))
}

func TestCheck(t *testing.T) {
	spec := writeSpec(t, "spec.yaml", specYAML)

	out, _, err := run(t, "check", spec, "--", "--fast", "in.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "resolved")
	assert.Contains(t, out, `"in.txt"`)
	assert.Contains(t, out, `"out.txt"`)
	assert.Contains(t, out, "defaulted")

	out, _, err = run(t, "check", spec, "--line", "-o 'my file' in.txt")
	require.NoError(t, err)
	assert.Contains(t, out, `"my file"`)

	_, stderr, err := run(t, "check", spec, "--", "--fast", "--safe", "in.txt")
	assert.Equal(t, exitResolution, exitCode(err))
	assert.Contains(t, stderr, "fast")
	assert.Contains(t, stderr, "safe")

	_, _, err = run(t, "check", spec, "--", "--fast")
	assert.Equal(t, exitResolution, exitCode(err))

	_, _, err = run(t, "check", spec, "--", "--nope")
	assert.Equal(t, exitResolution, exitCode(err))
}

func TestCheck_Language(t *testing.T) {
	spec := writeSpec(t, "spec.yaml", specYAML)

	_, en, err := run(t, "check", spec, "--", "--fast")
	require.Error(t, err)
	_, de, err := run(t, "--lang", "de-CH", "check", spec, "--", "--fast")
	require.Error(t, err)

	assert.Contains(t, en, "input")
	assert.Contains(t, de, "input")
	assert.NotEqual(t, en, de)
}

func TestExplain(t *testing.T) {
	out, _, err := run(t, "explain", "-o, --output <FILE>... 'where to write'")
	require.NoError(t, err)
	assert.Contains(t, out, "-o, --output <FILE>...")
	assert.Contains(t, out, "help: where to write")

	_, _, err = run(t, "explain", "--output <FILE")
	assert.Equal(t, exitConfig, exitCode(err))
}
