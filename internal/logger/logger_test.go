package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInit_DisableAfterEnable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Output: &buf}))
	require.True(t, L.Enabled(t.Context(), slog.LevelInfo))

	require.NoError(t, Init(Options{}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))

	Error("dropped", "k", 1)
	assert.Empty(t, buf.String())
}

func TestInit_Output(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug}))

	Debug("grow", "from", 4, "to", 8)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "grow", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 8, rec["to"])
}

func TestInit_LevelFilters(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Output: &buf}))

	Debug("hidden")
	assert.Zero(t, buf.Len(), "debug is below the default info level")

	Warn("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestInit_FileInLogDir(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, App: "dynctl", LogDir: dir}))
	Info("hello")

	want := filepath.Join(dir, "dynctl-"+time.Now().Format(dateLayout)+logSuffix)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	files := map[string]bool{
		"dynctl-2024-02-28.log":      true,  // recent, kept
		"dynctl-2024-01-01.log":      false, // older than retention, removed
		"dynctl-garbage.log":         true,  // unparsable date, kept
		"dynexplorer-2023-01-01.log": true,  // other app, kept
		"notes.txt":                  true,
	}
	for name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cleanOldLogs(dir, "dynctl-", now)

	for name, kept := range files {
		_, err := os.Stat(filepath.Join(dir, name))
		if kept {
			assert.NoError(t, err, "%s should be kept", name)
		} else {
			assert.True(t, os.IsNotExist(err), "%s should be removed", name)
		}
	}
}
