package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := "assistant:\n  default_model: \"\"\nmail:\n  provider: none\nstorage:\n  path: " + filepath.Join(dir, "portfolio.db") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv("TERMFOLIO_DB", "")
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, closeFn := NewRootCmd(Options{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	require.NoError(t, closeFn())
	return out.String(), err
}

func TestVersionNeedsNoConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist", "config.yaml")
	out, err := runCLI(t, "--config", missing, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "termfolio")
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr), "version must not create a config file")
}

func TestSeedThenExecLocal(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := runCLI(t, "--config", cfg, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded")

	out, err = runCLI(t, "--config", cfg, "exec", "--local", "--format", "html", "/cv")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="mb-2">`)
	assert.Contains(t, out, "Sophie Uwase")
	assert.NotContains(t, out, "Failed to load CV data")

	out, err = runCLI(t, "--config", cfg, "exec", "--local", "--format", "html", "/ask", "experience")
	require.NoError(t, err)
	assert.Contains(t, out, "Field Support Officer")
}

func TestExecRejectsUnknownFormat(t *testing.T) {
	cfg := writeTestConfig(t)
	_, err := runCLI(t, "--config", cfg, "exec", "--local", "--format", "xml", "/help")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestResetRequiresConfirm(t *testing.T) {
	cfg := writeTestConfig(t)
	out, err := runCLI(t, "--config", cfg, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "--confirm")
}

func TestContactsListEmpty(t *testing.T) {
	cfg := writeTestConfig(t)
	out, err := runCLI(t, "--config", cfg, "contacts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No contact submissions yet.")
}
