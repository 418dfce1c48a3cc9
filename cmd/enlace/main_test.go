package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/enlace/internal/prefs"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestLayout_DefaultsToHorizontal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	out, err := execute(t, "layout", "--prefs", path)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", out)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "reading must not create the file")
}

func TestLayout_ToggleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	out, err := execute(t, "layout", "toggle", "--prefs", path)
	require.NoError(t, err)
	assert.Equal(t, "vertical", out)
	assert.Equal(t, prefs.Vertical, prefs.Load(path).MenuLayout)

	out, err = execute(t, "layout", "toggle", "--prefs", path)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", out)
	assert.Equal(t, prefs.Horizontal, prefs.Load(path).MenuLayout)
}

func TestLayout_SetExplicitKeepsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, prefs.Save(path, prefs.Prefs{MenuLayout: prefs.Horizontal, Theme: "Slate"}))

	_, err := execute(t, "layout", "vertical", "--prefs", path)
	require.NoError(t, err)

	got := prefs.Load(path)
	assert.Equal(t, prefs.Vertical, got.MenuLayout)
	assert.Equal(t, "Slate", got.Theme)
}

func TestLayout_RejectsUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	_, err := execute(t, "layout", "diagonal", "--prefs", path)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	require.Error(t, err)
}

func TestLogs_FiltersLevel(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "enlace.log")
	require.NoError(t, os.WriteFile(logPath, []byte(
		`{"level":"info","ts":"t1","msg":"starting enlace"}`+"\n"+
			`{"level":"warn","ts":"t2","msg":"menu layout not saved"}`+"\n"), 0o644))
	t.Setenv("ENLACE_LOG_FILE", logPath)

	out, err := execute(t, "logs", "--level", "warn", "--config", filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "menu layout not saved")
	assert.NotContains(t, out, "starting enlace")
}

func TestLogs_RejectsBadLevel(t *testing.T) {
	_, err := execute(t, "logs", "--level", "loud")
	require.Error(t, err)
}
