package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "enlace.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Info("navigate")
	logger.Debug("hidden")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	require.Contains(t, out, `"msg":"navigate"`)
	require.NotContains(t, out, "hidden")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enlace.log")

	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("detail")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(raw), "detail"))
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("  ", false)
	require.NoError(t, err)
	require.NotNil(t, logger)
}
