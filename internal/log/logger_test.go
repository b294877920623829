package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewWithWriter(&buf, "warn"))
	defer SetLogger(NewWithWriter(&bytes.Buffer{}, "info"))

	Debug("hidden")
	Info("hidden too")
	Warn("listing skipped", "dir", "skills")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "listing skipped")
	assert.Contains(t, out, "dir=skills")
	assert.Contains(t, out, "skillsm")
}

func TestNewWithWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "loud")
	l.logger.Debug("nope")
	l.logger.Info("yes")

	assert.NotContains(t, buf.String(), "nope")
	assert.Contains(t, buf.String(), "yes")
}

func TestInit_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "debug"))

	Debug("probe hit", "url", "https://example.test")
	require.NoError(t, Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe hit")
}

func TestInit_ClosesPreviousFile(t *testing.T) {
	first := t.TempDir()
	require.NoError(t, Init(first, "info"))

	mu.RLock()
	prev := globalLogger.file
	mu.RUnlock()
	require.NotNil(t, prev)

	second := t.TempDir()
	require.NoError(t, Init(second, "info"))
	defer func() { _ = Close() }()

	_, err := prev.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)

	Info("after reinit")
	data, err := os.ReadFile(filepath.Join(second, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "after reinit")
}
