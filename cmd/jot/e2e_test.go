package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildJotBinary builds the jot binary in dir and returns its path.
func buildJotBinary(t *testing.T, dir string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}
	bin := filepath.Join(dir, "jot.exe")
	buildCmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build jot: %v\n%s", err, string(out))
	}
	return bin
}

func runJot(t *testing.T, dir, bin string, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(bin, append([]string{"--no-color"}, args...)...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.Output()
	return string(out), err
}

func TestCLI_RunScripts(t *testing.T) {
	dir := t.TempDir()
	bin := buildJotBinary(t, dir)

	script := `add title="Buy milk" description=2L date=2024-05-01 priority=low
add title="Pay rent" description=June date=2024-06-01 priority=high
search pay
list --format json
`
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sessions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sessions", "a.jot"), []byte(script), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jot.yaml"), []byte("id:\n  kind: uuid\n"), 0o644))

	out, err := runJot(t, dir, bin, "", "run", "sessions/**/*.jot")
	require.NoError(t, err)

	assert.Contains(t, out, "== sessions/a.jot")
	assert.Contains(t, out, `"title": "Pay rent"`)
	assert.NotContains(t, out, `"title": "Buy milk"`)
}

func TestCLI_RunStrictFails(t *testing.T) {
	dir := t.TempDir()
	bin := buildJotBinary(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.jot"), []byte("nonsense\n"), 0o644))

	_, err := runJot(t, dir, bin, "", "run", "--strict", "bad.jot")
	assert.Error(t, err)
}

func TestCLI_Shell(t *testing.T) {
	dir := t.TempDir()
	bin := buildJotBinary(t, dir)

	stdin := "set title Draft\nsubmit\nadd description=d date=2024-01-01 priority=medium\nlist\nstate\nquit\n"
	out, err := runJot(t, dir, bin, stdin, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "description: Description is required.")
	assert.Contains(t, out, "Priority: medium")
	assert.Contains(t, out, `"feed": {`, "state reports the change feed")
	assert.NotContains(t, out, "jot[", "no prompt when stdin is not a terminal")
}
