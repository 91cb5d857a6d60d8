package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppkg "github.com/kk-code-lab/dirpeek/internal/app"
)

func withWidth(t *testing.T, width int, ok bool) {
	t.Helper()
	prev := terminalWidth
	terminalWidth = func() (int, bool) { return width, ok }
	t.Cleanup(func() { terminalWidth = prev })
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandHelp(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "dirpeek")
	assert.Contains(t, out, "--max-lines")
	assert.Contains(t, out, "-l")
}

func TestRootCommandDefaults(t *testing.T) {
	cmd := NewRootCommand()
	flag := cmd.Flags().Lookup("max-lines")
	require.NotNil(t, flag)
	assert.Equal(t, "2", flag.DefValue)
	assert.Equal(t, "l", flag.Shorthand)
}

func TestRootCommandListsDirectory(t *testing.T) {
	withWidth(t, 80, true)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))

	out, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "src")
	assert.Contains(t, out, "/")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRootCommandRejectsZeroMaxLines(t *testing.T) {
	withWidth(t, 80, true)
	out, _, err := execute(t, "-l", "0", t.TempDir())
	require.Error(t, err)

	var verr *apppkg.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Empty(t, out)
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	_, _, err := execute(t, "a", "b")
	assert.Error(t, err)
}

func TestRootCommandMissingDirectory(t *testing.T) {
	withWidth(t, 80, true)
	out, _, err := execute(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read directory")
	assert.Empty(t, out)
}

func TestRootCommandDebugWritesToStderr(t *testing.T) {
	withWidth(t, 80, true)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), nil, 0o644))

	out, errOut, err := execute(t, "--debug", "--max-lines", "3", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "a")
	assert.Contains(t, errOut, "capacity bound=30")
	assert.NotContains(t, out, "capacity bound")
}

func TestRootCommandVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
